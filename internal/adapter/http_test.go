// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, Token: "tok"}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func testTable() models.Table {
	return models.NewTable([]string{"Account ID", "Email"}, []string{"ACCT1001", "john@example.com"})
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://pipeline.internal/", "https://pipeline.internal", false},
		{"  ", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())

	assert.Error(t, err)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost")

	a.SetToken("  abc \n")

	assert.Equal(t, "abc", a.Token())
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestUpload_AttachesHashAndToken(t *testing.T) {
	wantHash, err := utils.HashTable(testTable(), testHashKey)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/datasets", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "customers", req.Identifier)
		assert.Equal(t, wantHash, req.Hash)

		writeJSON(t, w, http.StatusCreated, models.PipelineResult{Success: true, StorageKey: "df_customers_1"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Upload(context.Background(), models.UploadRequest{
		Identifier: "customers",
		Table:      testTable(),
	})

	require.NoError(t, err)
	assert.Equal(t, "df_customers_1", got.StorageKey)
}

func TestUpload_FailureKeepsPartialResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.PipelineResult{
			Message: "pipeline processing failed",
			Errors:  []string{"table is empty"},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Upload(context.Background(), models.UploadRequest{Identifier: "x"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "table is empty")
	assert.Equal(t, []string{"table is empty"}, got.Errors)
}

func TestUploadBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets/batch", r.URL.Path)

		var req models.BatchUploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Uploads, 2)

		writeJSON(t, w, http.StatusOK, models.BatchUploadResponse{
			Results: []models.PipelineResult{{Success: true}, {Success: false}},
			Failed:  1,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UploadBatch(context.Background(), []models.UploadRequest{
		{Identifier: "a", Table: testTable()},
		{Identifier: "b", Table: testTable()},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Failed)
}

// ── Display / Pseudonymized ─────────────────────────────────────────────────

func TestDisplay_SendsPrivacyQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets/df_customers_1/display", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("privacy"))
		writeJSON(t, w, http.StatusOK, models.PipelineResult{Success: true})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Display(context.Background(), "df_customers_1", false)

	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestDisplay_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{"error": "unmask scope required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Display(context.Background(), "df_customers_1", false)

	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "unmask scope required")
}

func TestSetDisplayPrivacy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/datasets/df_a_1/display/privacy", r.URL.Path)

		var req models.PrivacyToggleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Enabled)

		writeJSON(t, w, http.StatusOK, models.PipelineResult{Success: true})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SetDisplayPrivacy(context.Background(), "df_a_1", true)

	require.NoError(t, err)
}

func TestPseudonymized_Withheld(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets/df_a_1/pseudonymized", r.URL.Path)
		writeJSON(t, w, http.StatusUnprocessableEntity, models.PipelineResult{
			Message: "pseudonymized data withheld",
			Metadata: models.PipelineMetadata{Verification: &models.VerificationResult{
				PotentialIssues: []string{"column Email: 1 original values still present"},
			}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Pseudonymized(context.Background(), "df_a_1")

	require.ErrorIs(t, err, ErrUnprocessable)
	require.NotNil(t, got.Metadata.Verification)
	assert.Len(t, got.Metadata.Verification.PotentialIssues, 1)
}

// ── Merge / Status / Cleanup / Version ──────────────────────────────────────

func TestMerge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.MergeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "outer", req.Strategy)

		writeJSON(t, w, http.StatusOK, models.MergeResult{
			Success:       true,
			QualityReport: &models.DataQualityReport{MatchedIdentifiers: 3},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Merge(context.Background(), models.MergeRequest{
		DatasetA: "customers", DatasetB: "purchases", Strategy: "outer",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, got.QualityReport.MatchedIdentifiers)
}

func TestMerge_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MergeResult{
			Message: "merge failed",
			Errors:  []string{`dataset a "ghost": no processed dataset for identifier`},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Merge(context.Background(), models.MergeRequest{DatasetA: "ghost", DatasetB: "b"})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, got.Errors, 1)
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.PipelineStatus{ActiveSessions: 4})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, got.ActiveSessions)
}

func TestCleanupSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/sessions/customers", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CleanupResponse{Identifier: "customers", Removed: true})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CleanupSession(context.Background(), "customers")

	require.NoError(t, err)
	assert.True(t, got.Removed)
}

func TestListDatasets_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListDatasets(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.4.2"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.2", got)
}

func TestMapHTTPError_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusGatewayTimeout, map[string]string{"error": "context deadline exceeded"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Status(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}
