// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the pipeline
// server.
//
// [ServerAdapter] decouples the command-line client from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] when
// the token lacks the unmask scope, [ErrUnprocessable] when a pseudonymized
// copy was withheld).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the pipeline server on behalf of one operator.
//
// Operations that return a pipeline or merge result also return the result
// decoded from a failure response, so callers can show partial information
// next to the error.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)
	Token() string

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)

	// Upload sends one table. When a hash key is configured the table's
	// integrity hash is attached automatically.
	Upload(ctx context.Context, req models.UploadRequest) (models.PipelineResult, error)
	// UploadBatch sends several tables in one request.
	UploadBatch(ctx context.Context, uploads []models.UploadRequest) (models.BatchUploadResponse, error)
	ListDatasets(ctx context.Context) ([]models.DatasetInfo, error)

	// Display fetches a dataset for viewing. privacy=false needs a token
	// with the unmask scope.
	Display(ctx context.Context, storageKey string, privacy bool) (models.PipelineResult, error)
	// SetDisplayPrivacy switches the server-wide display visibility.
	SetDisplayPrivacy(ctx context.Context, storageKey string, enabled bool) (models.PipelineResult, error)
	// Pseudonymized fetches the copy safe for external processing.
	Pseudonymized(ctx context.Context, storageKey string) (models.PipelineResult, error)

	Merge(ctx context.Context, req models.MergeRequest) (models.MergeResult, error)
	Status(ctx context.Context) (models.PipelineStatus, error)
	CleanupSession(ctx context.Context, identifier string) (models.CleanupResponse, error)
}
