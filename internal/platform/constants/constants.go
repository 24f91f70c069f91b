// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Storefront: cookie names and endpoint paths for the DLsite surface.
  - Redis Prefixes: key taxonomy for persisted session state.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "workshelf-syncd"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// A sync cycle streams its whole report in one response, so this is generous.
	DefaultWriteTimeout = 120 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// A full sync cycle (list fetch + N scrapes) has to fit inside it.
	GlobalRequestTimeout = 10 * time.Minute

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # API Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Storefront

const (
	// SessionCookieName is the cookie under which DLsite issues its session token.
	SessionCookieName = "__DLsite_SID"

	// StorefrontName is the publisher name attached to every synced work.
	StorefrontName = "DLsite"

	// PostLoginAddressMarker appears in the browser address once login completes.
	PostLoginAddressMarker = "/mypage"

	// LoginPath is the storefront login form, skipping the registration interstitial.
	LoginPath = "/home/login/=/skip_register/1"

	// PurchasesPath serves the machine-readable purchase list.
	PurchasesPath = "/maniax/load/bought/product"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData   = "data"
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaSystem  = "system"
)

// # Redis Prefixes (Key Taxonomy)

const (
	RedisKeySessionToken = "session:storefront_sid"
)
