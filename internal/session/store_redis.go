// Copyright (c) 2026 Workshelf. All rights reserved.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tsukihara/workshelf/internal/platform/constants"
)

// RedisTokenStore persists the storefront session token in Redis.
//
// The token is stored without a TTL: its lifetime is decided by the
// storefront, which signals expiry with a 401 on the next fetch.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

/*
Get retrieves the stored session token.

Description: Returns "" (and no error) when no token is stored.

Returns:
  - string: The opaque storefront session token
  - error: Connectivity errors
*/
func (store *RedisTokenStore) Get(context context.Context) (string, error) {
	token, err := store.client.Get(context, constants.RedisKeySessionToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return token, nil
}

/*
Set stores the session token without expiry.

Returns:
  - error: Storage failures
*/
func (store *RedisTokenStore) Set(context context.Context, token string) error {
	if err := store.client.Set(context, constants.RedisKeySessionToken, token, 0).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

/*
Delete removes the session token.

Returns:
  - error: Deletion failures
*/
func (store *RedisTokenStore) Delete(context context.Context) error {
	if err := store.client.Del(context, constants.RedisKeySessionToken).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
