package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName names the per-user data directory.
const AppName = "go-privacy-pipeline"

// Default values applied when no other source sets a field.
const (
	DefaultKDFIterations        = 100_000
	DefaultSensitivityThreshold = 0.6
	DefaultMaskingThreshold     = 0.5
	DefaultKeyColumn            = "Account ID"
	DefaultDisplayCap           = 10
	DefaultSourceTagA           = "a_"
	DefaultSourceTagB           = "b_"
	DefaultBatchConcurrency     = 4
	DefaultMaxBatchUploads      = 100
	DefaultTokenIssuer          = "go-privacy-pipeline"
	DefaultTokenDuration        = time.Hour
	DefaultRequestTimeout       = 30 * time.Second
	DefaultVersion              = "0.1.0"
)

// DefaultPhonePrefixes are the country prefixes the phone mask keeps.
var DefaultPhonePrefixes = []string{"+852", "+86", "+44", "+1"}

// DefaultStorageDir returns the per-user encrypted store directory,
// $XDG_DATA_HOME/go-privacy-pipeline/secure.
func DefaultStorageDir() string {
	return filepath.Join(xdg.DataHome, AppName, "secure")
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Dir:           DefaultStorageDir(),
			KDFIterations: DefaultKDFIterations,
		},
		Privacy: Privacy{
			SensitivityThreshold: DefaultSensitivityThreshold,
			MaskingThreshold:     DefaultMaskingThreshold,
			PhonePrefixes:        append([]string(nil), DefaultPhonePrefixes...),
		},
		Merge: Merge{
			KeyColumn:  DefaultKeyColumn,
			DisplayCap: DefaultDisplayCap,
			SourceTagA: DefaultSourceTagA,
			SourceTagB: DefaultSourceTagB,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			BatchConcurrency: DefaultBatchConcurrency,
			MaxBatchUploads:  DefaultMaxBatchUploads,
		},
	}
}
