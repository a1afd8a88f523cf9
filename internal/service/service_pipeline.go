// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-privacy-pipeline/internal/classifier"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/store"
	"github.com/MKhiriev/go-privacy-pipeline/internal/workers"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// session is what the pipeline remembers about a dataset uploaded by this
// process. It lives until CleanupSession or process exit.
type session struct {
	identifier     string
	storageKey     string
	piiFields      []string
	identification map[string]models.FieldIdentificationResult
	stats          models.ProcessingStats
	processedAt    time.Time
}

// PipelineOptions holds the pipeline settings that are not collaborators.
type PipelineOptions struct {
	// KeyColumn is the join key used by Merge when the caller names none.
	KeyColumn string
	// BatchConcurrency limits concurrent uploads in ProcessBatch.
	BatchConcurrency int
}

// pipeline is the concrete implementation of Pipeline. It owns the
// identifier to storage key mapping and the processing statistics; all
// dataset content lives in the CryptoStore.
type pipeline struct {
	store         store.CryptoStore
	classifier    Classifier
	pseudonymizer Pseudonymizer
	masker        Masker
	merger        Merger

	keyColumn string
	batch     *workers.BatchProcessor

	mu        sync.RWMutex
	sessions  map[string]session
	processed int
	totalTime time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewPipeline wires the pipeline from its collaborators.
func NewPipeline(cryptoStore store.CryptoStore, c Classifier, p Pseudonymizer, m Masker, mg Merger, opts PipelineOptions, log *logger.Logger) Pipeline {
	return &pipeline{
		store:         cryptoStore,
		classifier:    c,
		pseudonymizer: p,
		masker:        m,
		merger:        mg,
		keyColumn:     opts.KeyColumn,
		batch:         workers.NewBatchProcessor(opts.BatchConcurrency, log),
		sessions:      make(map[string]session),
		now:           time.Now,
		logger:        log,
	}
}

// ProcessUpload runs the ingest workflow:
//  1. classify every column,
//  2. store the original encrypted,
//  3. pseudonymize the PII columns for external use,
//  4. mask the table for display with the current visibility.
//
// Classification runs first so that the identified PII fields are reported
// even when storing fails.
func (p *pipeline) ProcessUpload(ctx context.Context, table models.Table, identifier string, meta map[string]any) models.PipelineResult {
	log := logger.FromContext(ctx)
	started := p.now()

	if err := validateUpload(table, identifier); err != nil {
		log.Err(err).Msg("upload rejected")
		return failure("pipeline processing failed", err, models.PipelineMetadata{})
	}

	rows, cols := table.Shape()
	log.Info().Int("rows", rows).Int("columns", cols).Msg("processing upload")

	stats := models.ProcessingStats{StartedAt: started, Rows: rows, Columns: cols}

	step := p.now()
	identification := p.classifier.ClassifyTable(table)
	piiFields := classifier.SensitiveFrom(table.Columns, identification)
	stats.IdentificationDuration = p.now().Sub(step)

	metadata := models.PipelineMetadata{
		PIIFields:      piiFields,
		Identification: identification,
	}

	step = p.now()
	key, err := p.store.StoreTable(ctx, table, identifier, map[string]any{
		"identifier":    identifier,
		"uploaded_at":   started.UTC().Format(time.RFC3339),
		"rows":          rows,
		"columns":       slices.Clone(table.Columns),
		"user_metadata": userMetadata(meta),
	})
	if err != nil {
		log.Err(err).Msg("storing original failed")
		return failure("pipeline processing failed", fmt.Errorf("error storing original: %w", err), metadata)
	}
	stats.EncryptionDuration = p.now().Sub(step)

	step = p.now()
	pseudonymized := p.pseudonymizer.AnonymizeColumns(table, piiTypes(piiFields, identification))
	stats.PseudonymizeDuration = p.now().Sub(step)

	step = p.now()
	masked := p.masker.ProcessTable(table, nil, nil)
	stats.MaskingDuration = p.now().Sub(step)

	stats.TotalDuration = p.now().Sub(started)
	metadata.Stats = &stats
	metadata.Masking = masked.Metadata
	metadata.Compliance = models.ComplianceInfo{
		OriginalEncrypted:   true,
		PseudonymizedForLLM: true,
		DisplayMasked:       masked.IsMasked,
	}

	p.mu.Lock()
	previous, replaced := p.sessions[identifier]
	p.sessions[identifier] = session{
		identifier:     identifier,
		storageKey:     key,
		piiFields:      piiFields,
		identification: identification,
		stats:          stats,
		processedAt:    p.now(),
	}
	p.processed++
	p.totalTime += stats.TotalDuration
	p.mu.Unlock()

	// A re-upload replaces the dataset; the superseded entry is removed.
	if replaced && previous.storageKey != key {
		if _, err := p.store.Delete(ctx, previous.storageKey); err != nil {
			log.Err(err).Str("storage_key", previous.storageKey).Msg("deleting superseded dataset failed")
		}
	}

	log.Info().
		Str("storage_key", key).
		Int("pii_fields", len(piiFields)).
		Dur("duration", stats.TotalDuration).
		Msg("upload processed")

	return models.PipelineResult{
		Success:            true,
		Message:            fmt.Sprintf("processed %d rows with %d PII fields identified", rows, len(piiFields)),
		StorageKey:         key,
		PseudonymizedTable: &pseudonymized,
		DisplayTable:       &masked.Table,
		Metadata:           metadata,
	}
}

// ProcessBatch processes uploads concurrently. A failed upload is reported
// in its own result and does not stop the others.
func (p *pipeline) ProcessBatch(ctx context.Context, uploads []models.UploadRequest) []models.PipelineResult {
	return workers.Process(ctx, p.batch, uploads, func(ctx context.Context, u models.UploadRequest) models.PipelineResult {
		if err := ctx.Err(); err != nil {
			return failure("pipeline processing failed", err, models.PipelineMetadata{})
		}
		return p.ProcessUpload(ctx, u.Table, u.Identifier, u.Metadata)
	})
}

// RetrieveForDisplay decrypts the dataset at storageKey. With privacyEnabled
// sensitive values are masked regardless of the global visibility; without
// it the original values are returned.
func (p *pipeline) RetrieveForDisplay(ctx context.Context, storageKey string, privacyEnabled bool) models.PipelineResult {
	log := logger.FromContext(ctx)

	table, _, err := p.store.RetrieveTable(ctx, storageKey)
	if err != nil {
		log.Err(err).Str("storage_key", storageKey).Msg("retrieval for display failed")
		return failure("failed to retrieve data for display", err, models.PipelineMetadata{})
	}

	retrievedAt := p.now()
	metadata := models.PipelineMetadata{
		RetrievedAt:    &retrievedAt,
		PrivacyEnabled: &privacyEnabled,
	}

	display := table
	if privacyEnabled {
		masked := p.masker.Mask(table, nil, nil)
		display = masked.Table
		metadata.Masking = masked.Metadata
		metadata.Compliance.DisplayMasked = masked.IsMasked
	}
	metadata.Compliance.OriginalEncrypted = true

	log.Info().Str("storage_key", storageKey).Bool("privacy_enabled", privacyEnabled).Msg("retrieved for display")

	return models.PipelineResult{
		Success:      true,
		Message:      fmt.Sprintf("retrieved %d rows for display", display.Len()),
		StorageKey:   storageKey,
		DisplayTable: &display,
		Metadata:     metadata,
	}
}

// ToggleDisplayPrivacy sets the global visibility so later uploads render
// with it too, then returns the dataset rendered accordingly.
func (p *pipeline) ToggleDisplayPrivacy(ctx context.Context, storageKey string, enabled bool) models.PipelineResult {
	p.masker.SetVisibility(!enabled)
	return p.RetrieveForDisplay(ctx, storageKey, enabled)
}

// GetPseudonymizedForLLM pseudonymizes the stored original and verifies the
// copy before releasing it. Verification covers value overlap and the token
// pattern of every sensitive column. A copy that fails is withheld.
func (p *pipeline) GetPseudonymizedForLLM(ctx context.Context, storageKey string) models.PipelineResult {
	log := logger.FromContext(ctx)

	original, _, err := p.store.RetrieveTable(ctx, storageKey)
	if err != nil {
		log.Err(err).Str("storage_key", storageKey).Msg("retrieval for pseudonymization failed")
		return failure("failed to prepare pseudonymized data", err, models.PipelineMetadata{})
	}

	identification := p.classifier.ClassifyTable(original)
	piiFields := classifier.SensitiveFrom(original.Columns, identification)
	pseudonymized := p.pseudonymizer.AnonymizeColumns(original, piiTypes(piiFields, identification))

	report := p.pseudonymizer.Validate(original, pseudonymized, piiFields)
	verification := models.VerificationResult{
		SafeForExternalUse: report.Valid,
		ChecksPerformed: []string{
			"sensitive column identification",
			"structure preservation",
			"value overlap analysis",
			"pseudonymization pattern verification",
		},
		PotentialIssues: report.Issues,
	}

	metadata := models.PipelineMetadata{
		PIIFields:      piiFields,
		Identification: identification,
		Verification:   &verification,
		Compliance: models.ComplianceInfo{
			OriginalEncrypted:   true,
			PseudonymizedForLLM: report.Valid,
		},
	}

	if !report.Valid {
		log.Error().
			Str("storage_key", storageKey).
			Strs("issues", report.Issues).
			Msg("pseudonymized data failed verification")
		result := failure("pseudonymized data withheld", ErrUnsafeForExternalUse, metadata)
		result.Errors = append(result.Errors, report.Issues...)
		return result
	}

	log.Info().Str("storage_key", storageKey).Int("pii_fields", len(piiFields)).Msg("pseudonymized data verified")

	return models.PipelineResult{
		Success:            true,
		Message:            fmt.Sprintf("pseudonymized %d rows for external processing", pseudonymized.Len()),
		StorageKey:         storageKey,
		PseudonymizedTable: &pseudonymized,
		Metadata:           metadata,
	}
}

// Status reports the state of every component. A store that cannot be read
// is reported with encryption disabled.
func (p *pipeline) Status(ctx context.Context) models.PipelineStatus {
	encryption, err := p.store.Status(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reading store status failed")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var average time.Duration
	if p.processed > 0 {
		average = p.totalTime / time.Duration(p.processed)
	}

	return models.PipelineStatus{
		Encryption:            encryption,
		ClassifierRules:       p.classifier.RuleCount(),
		SensitivityThreshold:  p.classifier.Threshold(),
		MaskingThreshold:      p.masker.Threshold(),
		ShowSensitive:         p.masker.ShowSensitive(),
		PseudonymSaltSet:      p.pseudonymizer.SaltConfigured(),
		ActiveSessions:        len(p.sessions),
		ProcessedDatasets:     p.processed,
		AverageProcessingTime: average,
	}
}

// ListStoredDatasets lists the store joined with the sessions of this
// process.
func (p *pipeline) ListStoredDatasets(ctx context.Context) ([]models.DatasetInfo, error) {
	stored, err := p.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing stored data: %w", err)
	}

	p.mu.RLock()
	byKey := make(map[string]session, len(p.sessions))
	for _, s := range p.sessions {
		byKey[s.storageKey] = s
	}
	p.mu.RUnlock()

	out := make([]models.DatasetInfo, 0, len(stored))
	for _, info := range stored {
		item := models.DatasetInfo{StoredDataInfo: info}
		if s, ok := byKey[info.StorageKey]; ok {
			item.Identifier = s.identifier
			item.PIIFields = slices.Clone(s.piiFields)
		}
		out = append(out, item)
	}
	return out, nil
}

// CleanupSession deletes every stored original of identifier, both the
// session's entry and entries catalogued by earlier uploads, and forgets the
// session. It reports false when neither a session nor a catalogued entry
// exists. The session is forgotten even when a delete fails.
func (p *pipeline) CleanupSession(ctx context.Context, identifier string) bool {
	log := logger.FromContext(ctx)

	p.mu.Lock()
	s, ok := p.sessions[identifier]
	if ok {
		delete(p.sessions, identifier)
	}
	p.mu.Unlock()

	keys, err := p.store.KeysForIdentifier(ctx, identifier)
	if err != nil {
		log.Err(err).Msg("looking up catalogued entries failed")
	}
	if ok && !slices.Contains(keys, s.storageKey) {
		keys = append(keys, s.storageKey)
	}
	if len(keys) == 0 {
		return ok
	}

	for _, key := range keys {
		deleted, err := p.store.Delete(ctx, key)
		if err != nil {
			log.Err(err).Str("storage_key", key).Msg("deleting stored dataset failed")
			continue
		}
		log.Info().Str("storage_key", key).Bool("deleted", deleted).Msg("stored dataset removed")
	}
	log.Info().Int("entries", len(keys)).Msg("session cleaned up")

	return true
}

func validateUpload(table models.Table, identifier string) error {
	if identifier == "" {
		return models.NewValidationError("", "identifier", "dataset identifier is required")
	}
	if table.IsEmpty() {
		return ErrEmptyTable
	}
	return table.Validate()
}

// piiTypes maps every PII column to its detected field type.
func piiTypes(piiFields []string, identification map[string]models.FieldIdentificationResult) map[string]models.FieldType {
	types := make(map[string]models.FieldType, len(piiFields))
	for _, col := range piiFields {
		types[col] = identification[col].FieldType
	}
	return types
}

func userMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return maps.Clone(meta)
}

// failure builds an unsuccessful result that keeps whatever metadata was
// gathered before err.
func failure(message string, err error, metadata models.PipelineMetadata) models.PipelineResult {
	msg := message + ": " + err.Error()
	return models.PipelineResult{
		Success:  false,
		Message:  msg,
		Metadata: metadata,
		Errors:   []string{msg},
		Err:      err,
	}
}
