package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const (
	FieldIdentifier = "identifier"
	FieldTable      = "table"
	FieldMetadata   = "metadata"
	FieldUploads    = "uploads"
	FieldDatasetA   = "dataset_a"
	FieldDatasetB   = "dataset_b"
	FieldKeyColumn  = "key_column"
)

const (
	// MaxIdentifierLength is the longest accepted dataset identifier in runes.
	MaxIdentifierLength = 256
	// MaxMetadataEntries caps the metadata attached to one upload.
	MaxMetadataEntries = 64
	// DefaultMaxBatchUploads is the batch size limit used when none is set.
	DefaultMaxBatchUploads = 100
)

// RequestValidator validates the upload, batch and merge request bodies.
type RequestValidator struct {
	maxBatchUploads int
}

// NewRequestValidator creates a RequestValidator. A non-positive
// maxBatchUploads selects DefaultMaxBatchUploads.
func NewRequestValidator(maxBatchUploads int) Validator {
	if maxBatchUploads <= 0 {
		maxBatchUploads = DefaultMaxBatchUploads
	}
	return &RequestValidator{maxBatchUploads: maxBatchUploads}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.UploadRequest, models.BatchUploadRequest and models.MergeRequest
// are accepted; anything else yields ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUpload(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUpload(ctx, *value, fields...)

	case models.BatchUploadRequest:
		return v.validateBatch(ctx, value, fields...)
	case *models.BatchUploadRequest:
		return v.validateBatch(ctx, *value, fields...)

	case models.MergeRequest:
		return v.validateMerge(ctx, value, fields...)
	case *models.MergeRequest:
		return v.validateMerge(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUpload checks identifier, table and metadata by default.
func (v *RequestValidator) validateUpload(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldTable, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if err := checkIdentifier("", FieldIdentifier, req.Identifier); err != nil {
				return err
			}
		case FieldTable:
			if err := req.Table.Validate(); err != nil {
				return err
			}
		case FieldMetadata:
			if len(req.Metadata) > MaxMetadataEntries {
				return models.NewValidationError("", FieldMetadata,
					fmt.Sprintf("at most %d entries are allowed", MaxMetadataEntries))
			}
			for k := range req.Metadata {
				if strings.TrimSpace(k) == "" {
					return models.NewValidationError("", FieldMetadata, "empty metadata key")
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBatch checks the batch size and that no identifier repeats.
// Individual uploads are not validated: each one reports its own failure
// in the batch result.
func (v *RequestValidator) validateBatch(_ context.Context, req models.BatchUploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUploads}
	}

	for _, f := range fields {
		if f != FieldUploads {
			return ErrUnknownField
		}

		switch n := len(req.Uploads); {
		case n == 0:
			return models.NewValidationError("", FieldUploads, "no uploads provided")
		case n > v.maxBatchUploads:
			return models.NewValidationError("", FieldUploads,
				fmt.Sprintf("%d uploads exceed the limit of %d", n, v.maxBatchUploads))
		}

		seen := make(map[string]struct{}, len(req.Uploads))
		for _, u := range req.Uploads {
			if u.Identifier == "" {
				continue
			}
			if _, dup := seen[u.Identifier]; dup {
				return models.NewValidationError("", FieldUploads,
					fmt.Sprintf("identifier %q appears more than once", u.Identifier))
			}
			seen[u.Identifier] = struct{}{}
		}
	}

	return nil
}

// validateMerge checks that both datasets are named.
func (v *RequestValidator) validateMerge(_ context.Context, req models.MergeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDatasetA, FieldDatasetB, FieldKeyColumn}
	}

	for _, f := range fields {
		switch f {
		case FieldDatasetA:
			if err := checkIdentifier("a", FieldDatasetA, req.DatasetA); err != nil {
				return err
			}
		case FieldDatasetB:
			if err := checkIdentifier("b", FieldDatasetB, req.DatasetB); err != nil {
				return err
			}
		case FieldKeyColumn:
			if req.KeyColumn != "" && strings.TrimSpace(req.KeyColumn) == "" {
				return models.NewValidationError("", FieldKeyColumn, "key column is blank")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkIdentifier(side, field, identifier string) error {
	if strings.TrimSpace(identifier) == "" {
		return models.NewValidationError(side, field, "dataset identifier is required")
	}
	if !utf8.ValidString(identifier) {
		return models.NewValidationError(side, field, "identifier is not valid UTF-8")
	}
	if utf8.RuneCountInString(identifier) > MaxIdentifierLength {
		return models.NewValidationError(side, field,
			fmt.Sprintf("identifier is longer than %d characters", MaxIdentifierLength))
	}
	if strings.IndexFunc(identifier, unicode.IsControl) >= 0 {
		return models.NewValidationError(side, field, "identifier contains control characters")
	}
	return nil
}
