package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Pipeline Errors.

	// ErrMissingInput indicates a required source file is absent.
	// Taxonomy and sentiment sources degrade to an empty contribution,
	// the emoji catalogue does not.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedRow indicates a source row lacks a required field.
	ErrMalformedRow = errors.New("malformed row")

	// ErrCacheMiss indicates a glyph is absent from a cache that must be complete.
	ErrCacheMiss = errors.New("cache miss")

	// ErrExternalService indicates the color sampler or usage provider failed.
	// The failure is terminal for that operation; nothing retries it.
	ErrExternalService = errors.New("external service failure")
)
