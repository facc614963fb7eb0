// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the recipe
// book server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session signing secret,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// session backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and cookie settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before environment parsing.
	// Populated via the DOTENV environment variable; defaults to ".env".
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSecret signs the session cookie. At least 32 bytes.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions selects and configures the session backend.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the dialect as well: "postgres://" or "postgresql://" for
	// PostgreSQL, "file:", "sqlite://" or a path ending with ".db" for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions configures the server-side session store.
type Sessions struct {
	// Backend is "memory" or "redis".
	// Env: STORAGE_SESSIONS_BACKEND
	Backend string `env:"BACKEND"`

	// Env: STORAGE_SESSIONS_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: STORAGE_SESSIONS_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: STORAGE_SESSIONS_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// TTL bounds the session lifetime. Zero keeps sessions until logout.
	// Env: STORAGE_SESSIONS_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network, timeout and cookie settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CookieName is the name of the session cookie.
	// Env: SERVER_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecure marks the session cookie as HTTPS-only.
	// Env: SERVER_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (after loading .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
