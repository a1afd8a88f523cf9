// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors of this package.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		return fmt.Errorf("%w: storage dir is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.KDFIterations < DefaultKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidStorageConfigs, cfg.Storage.KDFIterations, DefaultKDFIterations)
	}

	if !inUnitRange(cfg.Privacy.SensitivityThreshold) || !inUnitRange(cfg.Privacy.MaskingThreshold) {
		return fmt.Errorf("%w: thresholds must be within [0,1]", ErrInvalidPrivacyConfigs)
	}

	if strings.TrimSpace(cfg.Merge.KeyColumn) == "" || cfg.Merge.DisplayCap <= 0 {
		return fmt.Errorf("%w: key column and display cap are required", ErrInvalidMergeConfigs)
	}
	if cfg.Merge.SourceTagA == cfg.Merge.SourceTagB {
		return fmt.Errorf("%w: source tags must differ", ErrInvalidMergeConfigs)
	}

	if cfg.Workers.BatchConcurrency <= 0 {
		return fmt.Errorf("%w: batch concurrency must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.MaxBatchUploads <= 0 {
		return fmt.Errorf("%w: max batch uploads must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

// Validate checks that the client can reach a server. It is called after
// command-line overrides have been applied.
func (cfg *ClientConfig) Validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
