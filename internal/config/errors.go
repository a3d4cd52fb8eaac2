package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are absent.
var (
	// ErrMissingCipherSecret indicates that no field encryption secret was
	// provided by any configuration source.
	ErrMissingCipherSecret = errors.New("cipher secret is required")
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
