// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the registry validator
// service. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification settings, the log level and the
	// application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the lookup database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote taxonomy service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Validation holds the rule limits and the default API version.
	Validation Validation `envPrefix:"VALIDATION_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey verifies the HMAC signature of bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address of the HTTP API, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the storage backends.
type Storage struct {
	// DB holds the lookup database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the lookup database.
type DB struct {
	// Driver is "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, a file path for sqlite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Migrate applies the embedded migrations on startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Adapter holds the settings of the remote taxonomy service. When
// TaxonomyURL is empty the vocabularies are read from the database.
type Adapter struct {
	// TaxonomyURL is the base URL of the taxonomy service.
	// Env: ADAPTER_TAXONOMY_URL
	TaxonomyURL string `env:"TAXONOMY_URL"`

	// RequestTimeout bounds one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Validation holds the rule limits of the validation engine.
type Validation struct {
	// Env: VALIDATION_MAX_SERVICE_CLASSES
	MaxServiceClasses int `env:"MAX_SERVICE_CLASSES"`

	// Env: VALIDATION_MAX_ONTOLOGY_TERMS
	MaxOntologyTerms int `env:"MAX_ONTOLOGY_TERMS"`

	// Env: VALIDATION_MAX_LIFE_EVENTS
	MaxLifeEvents int `env:"MAX_LIFE_EVENTS"`

	// DefaultVersion is used for requests that do not name an API version.
	// Env: VALIDATION_DEFAULT_VERSION
	DefaultVersion int `env:"DEFAULT_VERSION"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CodeCacheRefreshInterval is how often the code tables are reloaded.
	// Env: WORKERS_CODE_CACHE_REFRESH_INTERVAL
	CodeCacheRefreshInterval time.Duration `env:"CODE_CACHE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (a later source overrides
// non-zero fields of an earlier one):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
