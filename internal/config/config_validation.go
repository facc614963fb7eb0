// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultCookieName     = "session"
	defaultSessionBackend = "memory"
	defaultBcryptCost     = 10
	defaultLogLevel       = "debug"

	// MinSessionSecretLength matches the HMAC-SHA256 key size.
	MinSessionSecretLength = 32

	minBcryptCost = 4
	maxBcryptCost = 31
)

// applyDefaults fills settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.CookieName == "" {
		cfg.Server.CookieName = defaultCookieName
	}
	if cfg.Storage.Sessions.Backend == "" {
		cfg.Storage.Sessions.Backend = defaultSessionBackend
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if _, err := DetectDialect(cfg.Storage.DB.DSN); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	switch cfg.Storage.Sessions.Backend {
	case "memory":
	case "redis":
		if cfg.Storage.Sessions.RedisAddress == "" {
			return fmt.Errorf("%w: redis backend requires an address", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Storage.Sessions.Backend)
	}
	if cfg.Storage.Sessions.TTL < 0 {
		return fmt.Errorf("%w: negative session ttl", ErrInvalidSessionConfigs)
	}

	if len(cfg.App.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf("%w: session secret must be at least %d bytes", ErrInvalidAppConfigs, MinSessionSecretLength)
	}
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
