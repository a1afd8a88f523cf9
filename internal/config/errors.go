package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid encrypted store settings
	// (for example, empty directory or too few KDF iterations).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPrivacyConfigs indicates thresholds outside [0,1].
	ErrInvalidPrivacyConfigs = errors.New("invalid privacy configuration")
	// ErrInvalidMergeConfigs indicates an unusable merge setup.
	ErrInvalidMergeConfigs = errors.New("invalid merge configuration")
	// ErrInvalidWorkerConfigs indicates invalid batch worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
