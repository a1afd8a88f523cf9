// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package masking renders sensitive values for human operators.
//
// Masks are format preserving: an email still looks like an email and a card
// number keeps its grouping. Whether anything is masked depends on the
// process-wide visibility switch, which can be toggled at runtime without
// touching stored data.
package masking

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// DefaultThreshold is the confidence at which a classified value is masked.
const DefaultThreshold = 0.5

// metadataSampleSize is the number of values used to classify a column for
// the audit metadata.
const metadataSampleSize = 5

// ErrInvalidThreshold is returned for thresholds outside [0,1].
var ErrInvalidThreshold = errors.New("masking threshold must be within [0,1]")

// FieldClassifier classifies a column from its name and sample values.
type FieldClassifier interface {
	Classify(column string, samples []string) models.FieldIdentificationResult
}

// Options configures a [Masker].
type Options struct {
	Threshold     float64
	ShowSensitive bool
	PhonePrefixes []string
}

// Masker masks values for display. It is safe for concurrent use.
type Masker struct {
	mu        sync.RWMutex
	show      bool
	threshold float64

	phone      phoneMasker
	classifier FieldClassifier
	logger     *logger.Logger
}

// New returns a Masker that hides sensitive values unless
// opts.ShowSensitive is set.
func New(classifier FieldClassifier, log *logger.Logger, opts Options) (*Masker, error) {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, opts.Threshold)
	}

	return &Masker{
		show:       opts.ShowSensitive,
		threshold:  opts.Threshold,
		phone:      newPhoneMasker(opts.PhonePrefixes),
		classifier: classifier,
		logger:     log,
	}, nil
}

// SetVisibility switches between the masked (false) and original (true)
// view.
func (m *Masker) SetVisibility(show bool) {
	m.mu.Lock()
	m.show = show
	m.mu.Unlock()

	m.logger.Info().Bool("show_sensitive", show).Msg("display visibility set")
}

// ToggleVisibility flips the visibility and returns the new state.
func (m *Masker) ToggleVisibility() bool {
	m.mu.Lock()
	m.show = !m.show
	show := m.show
	m.mu.Unlock()

	m.logger.Info().Bool("show_sensitive", show).Msg("display visibility toggled")
	return show
}

// ShowSensitive reports whether original values are shown.
func (m *Masker) ShowSensitive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.show
}

// Threshold returns the current masking threshold.
func (m *Masker) Threshold() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.threshold
}

// SetThreshold changes the masking threshold.
func (m *Masker) SetThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	m.mu.Lock()
	m.threshold = threshold
	m.mu.Unlock()

	m.logger.Debug().Float64("threshold", threshold).Msg("masking threshold set")
	return nil
}

// MaskValue applies the mask of ft regardless of visibility.
func (m *Masker) MaskValue(value string, ft models.FieldType) string {
	if value == "" {
		return value
	}
	return m.maskFor(ft)(value)
}

// ProcessValue classifies and masks a single value. A non-nil forced type
// skips classification with full confidence.
func (m *Masker) ProcessValue(value models.Value, column string, forced *models.FieldType) models.MaskingResult {
	show, threshold := m.state()
	return m.processValue(value, column, forced, show, threshold)
}

func (m *Masker) processValue(value models.Value, column string, forced *models.FieldType, show bool, threshold float64) models.MaskingResult {
	if value == nil || *value == "" {
		return models.MaskingResult{
			OriginalValue: value,
			MaskedValue:   value,
			FieldType:     models.FieldGeneral,
		}
	}

	var (
		ft   models.FieldType
		conf float64
	)
	if forced != nil {
		ft, conf = *forced, 1
	} else {
		res := m.classifier.Classify(column, []string{*value})
		ft, conf = res.FieldType, res.Confidence
	}

	result := models.MaskingResult{
		OriginalValue: value,
		MaskedValue:   value,
		FieldType:     ft,
		Confidence:    conf,
	}
	if !show && conf >= threshold && ft != models.FieldGeneral {
		result.MaskedValue = models.Str(m.maskFor(ft)(*value))
		result.IsMasked = true
	}
	return result
}

// ProcessTable masks the given columns of t, or every column when
// sensitiveColumns is empty. The source table is never modified. Columns
// that do not exist are skipped.
func (m *Masker) ProcessTable(t models.Table, sensitiveColumns []string, forcedTypes map[string]models.FieldType) models.TableMaskingResult {
	show, threshold := m.state()
	return m.processTable(t, sensitiveColumns, forcedTypes, show, threshold)
}

// Mask is ProcessTable with the visibility switch ignored: sensitive values
// are always hidden.
func (m *Masker) Mask(t models.Table, sensitiveColumns []string, forcedTypes map[string]models.FieldType) models.TableMaskingResult {
	return m.processTable(t, sensitiveColumns, forcedTypes, false, m.Threshold())
}

func (m *Masker) processTable(t models.Table, sensitiveColumns []string, forcedTypes map[string]models.FieldType, show bool, threshold float64) models.TableMaskingResult {
	columns := sensitiveColumns
	if len(columns) == 0 {
		columns = t.Columns
	}

	out := t.Clone()
	metadata := make(map[string]models.ColumnMaskingMetadata, len(columns))
	totalMasked, maskedColumns := 0, 0

	for _, col := range columns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			m.logger.Warn().Str("column", col).Msg("column not found, skipping")
			continue
		}

		var forced *models.FieldType
		if ft, ok := forcedTypes[col]; ok {
			forced = &ft
		}

		masked, total := 0, 0
		for i, row := range t.Rows {
			if idx >= len(row) || row[idx] == nil {
				continue
			}
			total++
			res := m.processValue(row[idx], col, forced, show, threshold)
			if res.IsMasked {
				out.Rows[i][idx] = res.MaskedValue
				masked++
			}
		}

		meta := models.ColumnMaskingMetadata{
			MaskedCount: masked,
			TotalCount:  total,
		}
		if forced != nil {
			meta.FieldType, meta.Confidence = *forced, 1
		} else {
			res := m.classifier.Classify(col, t.NonNullSample(col, metadataSampleSize))
			meta.FieldType, meta.Confidence = res.FieldType, res.Confidence
		}
		if total > 0 {
			meta.MaskingPercentage = float64(masked) / float64(total) * 100
		}
		metadata[col] = meta

		totalMasked += masked
		if masked > 0 {
			maskedColumns++
		}
	}

	m.logger.Info().
		Int("rows", t.Len()).
		Int("masked_fields", totalMasked).
		Int("masked_columns", maskedColumns).
		Msg("table masking complete")

	return models.TableMaskingResult{
		Table:       out,
		Metadata:    metadata,
		TotalMasked: totalMasked,
		IsMasked:    !show,
		Message:     statusMessage(show, totalMasked, maskedColumns),
	}
}

func (m *Masker) state() (bool, float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.show, m.threshold
}

func statusMessage(show bool, maskedFields, maskedColumns int) string {
	switch {
	case show:
		return "showing original sensitive data"
	case maskedFields > 0:
		return fmt.Sprintf("%d sensitive fields masked across %d %s",
			maskedFields, maskedColumns, plural(maskedColumns, "column"))
	default:
		return "no sensitive data detected"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
