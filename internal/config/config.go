// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// privacy pipeline server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the request integrity key and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the encrypted store location, the master password and
	// the entry catalog settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Privacy holds classifier, pseudonymizer and display masker settings.
	Privacy Privacy `envPrefix:"PRIVACY_"`

	// Merge holds dataset merger settings.
	Merge Merge `envPrefix:"MERGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the command-line client to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds batch processing settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, request integrity and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for upload integrity checking. When
	// empty, upload hashes are not required.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage configures the encrypted store.
type Storage struct {
	// Dir is the directory holding one encrypted file per entry and the
	// master password verifier.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// MasterPassword is the password every entry key is derived from. When
	// empty on first start a random password is generated and logged once.
	// Env: STORAGE_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// CatalogDSN is the SQLite DSN of the plaintext-free entry catalog.
	// Empty disables the catalog.
	// Env: STORAGE_CATALOG_DSN
	CatalogDSN string `env:"CATALOG_DSN"`

	// KDFIterations is the PBKDF2 iteration count, never below 100000.
	// Env: STORAGE_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Privacy configures classification, pseudonymization and masking.
type Privacy struct {
	// SensitivityThreshold is the classifier confidence at or above which
	// a column is reported sensitive.
	// Env: PRIVACY_SENSITIVITY_THRESHOLD
	SensitivityThreshold float64 `env:"SENSITIVITY_THRESHOLD"`

	// MaskingThreshold is the confidence at or above which the display
	// masker hides a value.
	// Env: PRIVACY_MASKING_THRESHOLD
	MaskingThreshold float64 `env:"MASKING_THRESHOLD"`

	// PseudonymSalt fixes the pseudonymization salt. Empty means a random
	// salt per process.
	// Env: PRIVACY_PSEUDONYM_SALT
	PseudonymSalt string `env:"PSEUDONYM_SALT"`

	// RulesFile is an optional YAML or JSON file with extra classifier rules.
	// Env: PRIVACY_RULES_FILE
	RulesFile string `env:"RULES_FILE"`

	// PhonePrefixes lists the country prefixes kept visible by the phone
	// mask, e.g. "+852,+1".
	// Env: PRIVACY_PHONE_PREFIXES
	PhonePrefixes []string `env:"PHONE_PREFIXES" envSeparator:","`

	// ShowSensitive sets the initial display visibility.
	// Env: PRIVACY_SHOW_SENSITIVE
	ShowSensitive bool `env:"SHOW_SENSITIVE"`
}

// Merge configures the dataset merger.
type Merge struct {
	// KeyColumn is the default join key column.
	// Env: MERGE_KEY_COLUMN
	KeyColumn string `env:"KEY_COLUMN"`

	// DisplayCap limits the unmatched identifier lists of the quality report.
	// Env: MERGE_DISPLAY_CAP
	DisplayCap int `env:"DISPLAY_CAP"`

	// SourceTagA and SourceTagB prefix non-key columns of each side.
	// Env: MERGE_SOURCE_TAG_A, MERGE_SOURCE_TAG_B
	SourceTagA string `env:"SOURCE_TAG_A"`
	SourceTagB string `env:"SOURCE_TAG_B"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the command-line client.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds batch processing settings.
type Workers struct {
	// BatchConcurrency limits concurrent uploads in a batch.
	// Env: WORKERS_BATCH_CONCURRENCY
	BatchConcurrency int `env:"BATCH_CONCURRENCY"`

	// MaxBatchUploads caps the number of uploads in one batch request.
	// Env: WORKERS_MAX_BATCH_UPLOADS
	MaxBatchUploads int `env:"MAX_BATCH_UPLOADS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
