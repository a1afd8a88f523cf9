// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the pipeline.
//
// A Validator rejects malformed identifiers, oversized batches and merge
// requests that name no dataset with a *models.ValidationError, so the
// transport maps every failure to 400 the same way it maps pipeline
// validation errors.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
