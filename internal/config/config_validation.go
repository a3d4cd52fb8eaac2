// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const (
	defaultTokenIssuer    = "drivenpass"
	defaultTokenDuration  = 24 * time.Hour
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	// minBcryptCost is the lowest acceptable bcrypt work factor.
	minBcryptCost = 10
)

// applyDefaults fills optional fields that were left zero by every
// configuration source. Secrets and the database DSN have no defaults;
// they are checked by [StructuredConfig.validate].
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost < minBcryptCost {
		cfg.App.BcryptCost = minBcryptCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CipherSecret == "" {
		return ErrMissingCipherSecret
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
