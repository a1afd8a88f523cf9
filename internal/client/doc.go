// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the pipeline server.
//
// It builds a cobra command tree over an [adapter.ServerAdapter]: uploading
// CSV files, viewing datasets masked or unmasked, fetching pseudonymized
// copies, merging datasets and rendering reports as JSON or markdown. The
// token command mints an operator token locally from the shared sign key.
package client
