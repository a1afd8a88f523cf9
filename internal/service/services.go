package service

import (
	"fmt"

	"github.com/MKhiriev/go-privacy-pipeline/internal/classifier"
	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/masking"
	"github.com/MKhiriev/go-privacy-pipeline/internal/merge"
	"github.com/MKhiriev/go-privacy-pipeline/internal/pseudonym"
	"github.com/MKhiriev/go-privacy-pipeline/internal/store"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

type Services struct {
	Pipeline       Pipeline
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the privacy components from cfg and wires them into
// the pipeline. The classifier instance is shared by the pseudonymizer and
// the masker so that all three agree on what is sensitive.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	var extra []classifier.Rule
	if cfg.Privacy.RulesFile != "" {
		rules, err := classifier.LoadRules(cfg.Privacy.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("error loading classifier rules: %w", err)
		}
		extra = rules
		logger.Info().Str("rules_file", cfg.Privacy.RulesFile).Int("rules", len(rules)).Msg("custom classifier rules loaded")
	}

	fieldClassifier, err := classifier.New(cfg.Privacy.SensitivityThreshold, logger, extra...)
	if err != nil {
		return nil, fmt.Errorf("error creating classifier: %w", err)
	}

	pseudonymizer, err := pseudonym.New(cfg.Privacy.PseudonymSalt, fieldClassifier, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating pseudonymizer: %w", err)
	}

	masker, err := masking.New(fieldClassifier, logger, masking.Options{
		Threshold:     cfg.Privacy.MaskingThreshold,
		ShowSensitive: cfg.Privacy.ShowSensitive,
		PhonePrefixes: cfg.Privacy.PhonePrefixes,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating display masker: %w", err)
	}

	merger, err := merge.New(merge.Options{
		SourceTagA: cfg.Merge.SourceTagA,
		SourceTagB: cfg.Merge.SourceTagB,
		DisplayCap: cfg.Merge.DisplayCap,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating merger: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Pipeline: NewPipeline(storages.CryptoStore, fieldClassifier, pseudonymizer, masker, merger, PipelineOptions{
			KeyColumn:        cfg.Merge.KeyColumn,
			BatchConcurrency: cfg.Workers.BatchConcurrency,
		}, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
