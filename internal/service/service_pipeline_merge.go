package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/merge"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// Merge joins the datasets uploaded as identifierA and identifierB on
// keyColumn, or on the configured key column when keyColumn is empty. Both
// originals are decrypted and masked for the display view; the masked form
// always hides sensitive values so that showSensitive alone decides what
// the display table reveals.
//
// An identifier without a session is resumed from the entry catalog, using
// the newest entry recorded for it.
func (p *pipeline) Merge(ctx context.Context, identifierA, identifierB string, strategy models.MergeStrategy, showSensitive bool, keyColumn string) models.MergeResult {
	log := logger.FromContext(ctx)

	if keyColumn == "" {
		keyColumn = p.keyColumn
	}
	if strategy == "" {
		strategy = models.MergeInner
	}

	a, errA := p.bundle(ctx, merge.SideA, identifierA, keyColumn)
	b, errB := p.bundle(ctx, merge.SideB, identifierB, keyColumn)
	if err := errors.Join(errA, errB); err != nil {
		log.Err(err).Msg("resolving merge inputs failed")
		return mergeFailure(err, strategy, keyColumn, showSensitive)
	}

	// The merger reports its failure in the result as well.
	result, _ := p.merger.Merge(ctx, a, b, strategy, showSensitive)
	return result
}

// bundle loads the original of identifier and masks it.
func (p *pipeline) bundle(ctx context.Context, side, identifier, keyColumn string) (models.DatasetBundle, error) {
	if identifier == "" {
		return models.DatasetBundle{}, models.NewValidationError(side, "identifier", "dataset identifier is required")
	}

	key, err := p.resolve(ctx, identifier)
	if err != nil {
		return models.DatasetBundle{}, fmt.Errorf("dataset %s %q: %w", side, identifier, err)
	}

	original, _, err := p.store.RetrieveTable(ctx, key)
	if err != nil {
		return models.DatasetBundle{}, fmt.Errorf("dataset %s %q: %w", side, identifier, err)
	}

	return models.DatasetBundle{
		Name:      identifier,
		Original:  original,
		Masked:    p.masker.Mask(original, nil, nil).Table,
		KeyColumn: keyColumn,
	}, nil
}

// resolve returns the storage key of identifier from its session or, for
// datasets uploaded by an earlier process, from the catalog.
func (p *pipeline) resolve(ctx context.Context, identifier string) (string, error) {
	p.mu.RLock()
	s, ok := p.sessions[identifier]
	p.mu.RUnlock()
	if ok {
		return s.storageKey, nil
	}

	keys, err := p.store.KeysForIdentifier(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("error looking up catalog: %w", err)
	}
	if len(keys) == 0 {
		return "", ErrSessionNotFound
	}
	return keys[len(keys)-1], nil
}

func mergeFailure(err error, strategy models.MergeStrategy, keyColumn string, showSensitive bool) models.MergeResult {
	result := models.MergeResult{
		Message: "merge failed: " + err.Error(),
		Metadata: models.MergeMetadata{
			Strategy:      strategy,
			KeyColumn:     keyColumn,
			ShowSensitive: showSensitive,
		},
		Err: err,
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			result.Errors = append(result.Errors, e.Error())
		}
	} else {
		result.Errors = []string{err.Error()}
	}
	return result
}
