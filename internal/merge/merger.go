// Package merge joins two processed datasets on a shared identifier.
//
// Every merge produces two row-aligned tables: one with original values and
// one with masked values. The join is planned once on the original keys and
// replayed on the masked tables, so masked keys can never create or lose a
// match.
package merge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// Defaults applied by [New] to zero options.
const (
	DefaultSourceTagA = "a_"
	DefaultSourceTagB = "b_"
	DefaultDisplayCap = 10
)

// Options configures a [Merger].
type Options struct {
	// SourceTagA and SourceTagB prefix the non-key columns of each side.
	SourceTagA string
	SourceTagB string
	// DisplayCap limits the unmatched identifier lists of the quality
	// report. The counts are never capped.
	DisplayCap int
}

// Merger joins dataset bundles. It holds no per-merge state and is safe for
// concurrent use.
type Merger struct {
	tagA, tagB string
	displayCap int

	now    func() time.Time
	logger *logger.Logger
}

// New returns a Merger. Equal source tags are rejected.
func New(opts Options, log *logger.Logger) (*Merger, error) {
	if opts.SourceTagA == "" {
		opts.SourceTagA = DefaultSourceTagA
	}
	if opts.SourceTagB == "" {
		opts.SourceTagB = DefaultSourceTagB
	}
	if opts.DisplayCap <= 0 {
		opts.DisplayCap = DefaultDisplayCap
	}
	if opts.SourceTagA == opts.SourceTagB {
		return nil, newError("", "source tags must differ, both are %q", opts.SourceTagA)
	}

	return &Merger{
		tagA:       opts.SourceTagA,
		tagB:       opts.SourceTagB,
		displayCap: opts.DisplayCap,
		now:        time.Now,
		logger:     log,
	}, nil
}

// Merge joins a and b with strategy. The result is complete or it is a
// failure: MergedTable and DisplayTable are both set or both nil. The
// returned error is the failure cause and matches [models.ErrValidation] or
// [ErrMerge].
//
// When showSensitive is set the display table is the original view.
func (m *Merger) Merge(ctx context.Context, a, b models.DatasetBundle, strategy models.MergeStrategy, showSensitive bool) (models.MergeResult, error) {
	started := m.now()
	result := models.MergeResult{
		Metadata: models.MergeMetadata{
			Strategy:      strategy,
			KeyColumn:     a.KeyColumn,
			ShowSensitive: showSensitive,
			RowsA:         a.Original.Len(),
			RowsB:         b.Original.Len(),
			StartedAt:     started,
		},
	}

	merged, display, report, err := m.merge(ctx, a, b, strategy, showSensitive)
	result.Metadata.Duration = m.now().Sub(started)
	if err != nil {
		m.logger.Err(err).Str("strategy", string(strategy)).Msg("merge failed")
		result.Message = "merge failed: " + err.Error()
		result.Errors = errorList(err)
		result.Err = err
		result.QualityReport = report
		return result, err
	}

	result.Success = true
	result.MergedTable = &merged
	result.DisplayTable = &display
	result.QualityReport = report
	result.Metadata.MergedRows, result.Metadata.MergedColumns = merged.Shape()
	result.Message = fmt.Sprintf("merged %d matched identifiers using %s join", report.MatchedIdentifiers, strategy)

	m.logger.Info().
		Str("strategy", string(strategy)).
		Int("rows", result.Metadata.MergedRows).
		Int("matched", report.MatchedIdentifiers).
		Float64("quality_score", report.QualityScore).
		Dur("duration", result.Metadata.Duration).
		Msg("merge complete")

	return result, nil
}

func (m *Merger) merge(ctx context.Context, a, b models.DatasetBundle, strategy models.MergeStrategy, showSensitive bool) (models.Table, models.Table, *models.DataQualityReport, error) {
	if err := ctx.Err(); err != nil {
		return models.Table{}, models.Table{}, nil, fmt.Errorf("merge cancelled: %w", err)
	}
	if _, err := models.ParseMergeStrategy(string(strategy)); err != nil || strategy == "" {
		return models.Table{}, models.Table{}, nil, models.NewValidationError("", "strategy", fmt.Sprintf("unknown merge strategy %q", strategy))
	}

	if err := errors.Join(validateBundle(SideA, a), validateBundle(SideB, b)); err != nil {
		return models.Table{}, models.Table{}, nil, err
	}

	l, err := newLayout(a, b, m.tagA, m.tagB)
	if err != nil {
		return models.Table{}, models.Table{}, nil, err
	}

	keysA := indexSide(a.Original, l.keyIdxA)
	keysB := indexSide(b.Original, l.keyIdxB)
	report := qualityReport(keysA, keysB, m.displayCap)

	plan := buildPlan(keysA, keysB, strategy)

	merged := l.apply(plan, a.Original, b.Original, func(p pair) models.Value {
		if p.a >= 0 {
			return models.Str(keysA.keys[p.a])
		}
		return models.Str(keysB.keys[p.b])
	})

	if showSensitive {
		return merged, merged.Clone(), &report, nil
	}

	display := l.apply(plan, a.Masked, b.Masked, func(p pair) models.Value {
		if p.a >= 0 {
			return cell(a.Masked, p.a, l.keyIdxA)
		}
		return cell(b.Masked, p.b, l.keyIdxB)
	})

	return merged, display, &report, nil
}

// validateBundle checks that the key column exists and that the masked form
// is row-aligned with the original.
func validateBundle(side string, d models.DatasetBundle) error {
	if err := d.Original.Validate(); err != nil {
		return withSide(side, err)
	}
	if d.KeyColumn == "" {
		return models.NewValidationError(side, "key_column", "join key column not set")
	}
	if !d.Original.HasColumn(d.KeyColumn) {
		return models.NewValidationError(side, d.KeyColumn, "join key column missing")
	}

	if err := d.Masked.Validate(); err != nil {
		return newError(side, "masked table invalid: %v", err)
	}
	if !d.Original.SameShape(d.Masked) {
		or, oc := d.Original.Shape()
		mr, mc := d.Masked.Shape()
		return newError(side, "masked table %dx%d is not aligned with original %dx%d", mr, mc, or, oc)
	}

	return nil
}

func withSide(side string, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return models.NewValidationError(side, ve.Field, ve.Reason)
	}
	return err
}

// errorList flattens joined errors into one message per cause.
func errorList(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
