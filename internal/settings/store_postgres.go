package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsukihara/workshelf/internal/platform/database/schema"
	"github.com/tsukihara/workshelf/internal/platform/dberr"
)

// settingKey is the row key under which the sync preferences live.
const settingKey = "sync_preferences"

// PostgresStore persists settings as a single JSONB row in system.setting.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Load(context context.Context) (Settings, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.SystemSetting.Value, schema.SystemSetting.Table, schema.SystemSetting.Key)

	var raw []byte
	err := store.db.QueryRow(context, query, settingKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Default(), nil
		}
		return Default(), dberr.Wrap(err, "load_settings")
	}

	settings := Default()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Default(), fmt.Errorf("settings: corrupt stored record: %w", err)
	}
	return settings, nil
}

func (store *PostgresStore) Save(context context.Context, settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.SystemSetting.Table,
		schema.SystemSetting.Key, schema.SystemSetting.Value, schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.Key,
		schema.SystemSetting.Value, schema.SystemSetting.Value, schema.SystemSetting.UpdatedAt,
	)

	_, err = store.db.Exec(context, query, settingKey, raw)
	return dberr.Wrap(err, "save_settings")
}
