// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Workshelf.

It provides a rich error type that bridges the gap between low-level
storefront/storage errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Sync taxonomy: AuthRequired, AuthExpired, FetchFailed, and ScrapeFailed cover
    every failure mode of a sync cycle.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the Workshelf API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional underlying cause.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., raw storefront bodies).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "AUTH_EXPIRED", "FETCH_FAILED").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Sync Cycle Errors

// AuthRequired creates a 401 [AppError] raised when no storefront session exists.
// The caller must run an interactive login before retrying; no network call is made.
func AuthRequired() *AppError {
	return &AppError{
		Code:       "AUTH_REQUIRED",
		Message:    "Not logged in to the storefront",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// AuthExpired creates a 401 [AppError] raised when the storefront rejects the
// stored session token. The session has already been invalidated; a re-login
// is required, distinguishing this from a generic fetch failure.
func AuthExpired() *AppError {
	return &AppError{
		Code:       "AUTH_EXPIRED",
		Message:    "Storefront session expired. Log in again",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// FetchFailed creates a 502 [AppError] for transport or HTTP failures on the
// purchase-list endpoint. Fatal for the whole sync cycle.
func FetchFailed(cause error) *AppError {
	return &AppError{
		Code:       "FETCH_FAILED",
		Message:    "Failed to load the storefront library",
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// ScrapeFailed creates a 502 [AppError] for a failed product-page retrieval.
// Scoped to a single product; sibling scrapes continue.
func ScrapeFailed(productID string, cause error) *AppError {
	return &AppError{
		Code:       "SCRAPE_FAILED",
		Message:    fmt.Sprintf("Failed to scrape product %s", productID),
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Work") // Returns "Work not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError creates a 400 [AppError] for malformed input.
func ValidationError(msg string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Conflict creates a 409 [AppError] for duplicate or concurrent-edit violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// CodeOf returns the machine-readable code of err, or "INTERNAL_ERROR" when the
// error is not an [*AppError].
func CodeOf(err error) string {
	if ae := As(err); ae != nil {
		return ae.Code
	}
	return "INTERNAL_ERROR"
}
