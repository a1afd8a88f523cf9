package service

import (
	"context"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Pipeline is the orchestrator facing the transports. Every operation that
// touches a dataset reports its outcome in the result instead of an error,
// so partial information survives a failure in a later step.
type Pipeline interface {
	// ProcessUpload stores table encrypted, classifies its columns and
	// returns the pseudonymized and display copies.
	ProcessUpload(ctx context.Context, table models.Table, identifier string, meta map[string]any) models.PipelineResult
	// ProcessBatch runs ProcessUpload for every request. Results keep the
	// order of uploads.
	ProcessBatch(ctx context.Context, uploads []models.UploadRequest) []models.PipelineResult

	// RetrieveForDisplay decrypts a dataset and masks it when privacyEnabled.
	RetrieveForDisplay(ctx context.Context, storageKey string, privacyEnabled bool) models.PipelineResult
	// ToggleDisplayPrivacy switches the display visibility and returns the
	// dataset rendered with the new setting.
	ToggleDisplayPrivacy(ctx context.Context, storageKey string, enabled bool) models.PipelineResult
	// GetPseudonymizedForLLM returns the pseudonymized dataset with the
	// result of the self-check attached. The table is withheld when the
	// check fails.
	GetPseudonymizedForLLM(ctx context.Context, storageKey string) models.PipelineResult

	// Merge joins two uploaded datasets.
	Merge(ctx context.Context, identifierA, identifierB string, strategy models.MergeStrategy, showSensitive bool, keyColumn string) models.MergeResult

	Status(ctx context.Context) models.PipelineStatus
	ListStoredDatasets(ctx context.Context) ([]models.DatasetInfo, error)
	// CleanupSession deletes the dataset of identifier and forgets its
	// session. It reports false when neither a session nor a catalogued entry exists.
	CleanupSession(ctx context.Context, identifier string) bool
}

// AuthService issues and verifies operator tokens.
type AuthService interface {
	CreateToken(ctx context.Context, operator string, scopes ...string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Classifier is the part of the field classifier the pipeline needs.
type Classifier interface {
	ClassifyTable(t models.Table) map[string]models.FieldIdentificationResult
	Threshold() float64
	RuleCount() int
}

// Pseudonymizer is the part of the pseudonymizer the pipeline needs.
type Pseudonymizer interface {
	AnonymizeColumns(t models.Table, types map[string]models.FieldType) models.Table
	Validate(original, anonymized models.Table, sensitive []string) models.AnonymizationReport
	SaltConfigured() bool
}

// Masker is the part of the display masker the pipeline needs.
type Masker interface {
	// ProcessTable masks according to the current visibility.
	ProcessTable(t models.Table, sensitive []string, forced map[string]models.FieldType) models.TableMaskingResult
	// Mask always hides sensitive values.
	Mask(t models.Table, sensitive []string, forced map[string]models.FieldType) models.TableMaskingResult
	SetVisibility(show bool)
	ShowSensitive() bool
	Threshold() float64
}

// Merger joins dataset bundles.
type Merger interface {
	Merge(ctx context.Context, a, b models.DatasetBundle, strategy models.MergeStrategy, showSensitive bool) (models.MergeResult, error)
}
