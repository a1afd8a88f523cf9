package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/internal/store"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// ─────────────────────────────────────────────
// POST /api/datasets
// ─────────────────────────────────────────────

func TestUploadDataset_Created(t *testing.T) {
	env := newTestEnv(t)
	table := sampleTable()

	env.pipeline.EXPECT().
		ProcessUpload(gomock.Any(), table, "customers", map[string]any{"source": "crm"}).
		Return(models.PipelineResult{Success: true, StorageKey: "df_customers_1", Message: "processed 1 rows with 2 PII fields identified"})

	rec := env.do(t, http.MethodPost, "/api/datasets", models.UploadRequest{
		Identifier: "customers",
		Table:      table,
		Metadata:   map[string]any{"source": "crm"},
	}, viewerToken)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	res := decode[models.PipelineResult](t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, "df_customers_1", res.StorageKey)
}

func TestUploadDataset_FailureKeepsResultBody(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.NewValidationError("", "identifier", "dataset identifier is required"), http.StatusBadRequest},
		{"empty table", service.ErrEmptyTable, http.StatusBadRequest},
		{"store failure", fmt.Errorf("error storing original: %w", store.ErrMasterPasswordRequired), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.pipeline.EXPECT().ProcessUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.PipelineResult{
					Message:  "pipeline processing failed",
					Errors:   []string{tt.err.Error()},
					Metadata: models.PipelineMetadata{PIIFields: []string{"Email"}},
					Err:      tt.err,
				})

			rec := env.do(t, http.MethodPost, "/api/datasets", models.UploadRequest{Identifier: "x", Table: sampleTable()}, viewerToken)

			require.Equal(t, tt.want, rec.Code)
			res := decode[models.PipelineResult](t, rec)
			assert.False(t, res.Success)
			assert.Equal(t, []string{"Email"}, res.Metadata.PIIFields)
		})
	}
}

func TestUploadDataset_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/datasets", "{not json", viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidJSON.Error())
}

// ─────────────────────────────────────────────
// POST /api/datasets/batch
// ─────────────────────────────────────────────

func TestUploadBatch_CountsFailures(t *testing.T) {
	env := newTestEnv(t)
	uploads := []models.UploadRequest{
		{Identifier: "a", Table: sampleTable()},
		{Identifier: "", Table: sampleTable()},
	}

	env.pipeline.EXPECT().ProcessBatch(gomock.Any(), uploads).Return([]models.PipelineResult{
		{Success: true, StorageKey: "df_a_1"},
		{Success: false, Message: "pipeline processing failed"},
	})

	rec := env.do(t, http.MethodPost, "/api/datasets/batch", models.BatchUploadRequest{Uploads: uploads}, viewerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.BatchUploadResponse](t, rec)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "df_a_1", res.Results[0].StorageKey)
	assert.Equal(t, 1, res.Failed)
}

func TestUploadBatch_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/datasets/batch", models.BatchUploadRequest{}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/datasets
// ─────────────────────────────────────────────

func TestListDatasets(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().ListStoredDatasets(gomock.Any()).Return([]models.DatasetInfo{
		{StoredDataInfo: models.StoredDataInfo{StorageKey: "df_customers_1"}, Identifier: "customers"},
	}, nil)

	rec := env.do(t, http.MethodGet, "/api/datasets", nil, viewerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.DatasetInfo](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "customers", list[0].Identifier)
}

func TestListDatasets_Error(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().ListStoredDatasets(gomock.Any()).Return(nil, errors.New("disk unreadable"))

	rec := env.do(t, http.MethodGet, "/api/datasets", nil, viewerToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/datasets/{key}/display
// ─────────────────────────────────────────────

func TestDisplay_PrivacyByDefault(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().RetrieveForDisplay(gomock.Any(), "df_customers_1", true).
		Return(models.PipelineResult{Success: true, StorageKey: "df_customers_1"})

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/display", nil, viewerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDisplay_UnmaskNeedsScope(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/display?privacy=false", nil, viewerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "unmask")
}

func TestDisplay_UnmaskWithScope(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().RetrieveForDisplay(gomock.Any(), "df_customers_1", false).
		Return(models.PipelineResult{Success: true})

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/display?privacy=false", nil, unmaskToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDisplay_InvalidPrivacyParam(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/display?privacy=maybe", nil, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDisplay_StoreErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrStorageNotFound, http.StatusNotFound},
		{store.ErrInvalidStorageKey, http.StatusBadRequest},
		{store.ErrDecryption, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			env := newTestEnv(t)
			env.pipeline.EXPECT().RetrieveForDisplay(gomock.Any(), gomock.Any(), true).
				Return(models.PipelineResult{Message: "failed to retrieve data for display", Err: tt.err})

			rec := env.do(t, http.MethodGet, "/api/datasets/df_x_1/display", nil, viewerToken)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/datasets/{key}/display/privacy
// ─────────────────────────────────────────────

func TestToggleDisplayPrivacy(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().ToggleDisplayPrivacy(gomock.Any(), "df_customers_1", true).
		Return(models.PipelineResult{Success: true})

	rec := env.do(t, http.MethodPut, "/api/datasets/df_customers_1/display/privacy",
		models.PrivacyToggleRequest{Enabled: true}, viewerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleDisplayPrivacy_DisableNeedsScope(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/datasets/df_customers_1/display/privacy",
		models.PrivacyToggleRequest{Enabled: false}, viewerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/datasets/{key}/pseudonymized
// ─────────────────────────────────────────────

func TestPseudonymized(t *testing.T) {
	env := newTestEnv(t)
	pseudonymized := models.NewTable([]string{"Email"}, []string{"EMAIL_0123456789abcdef"})
	env.pipeline.EXPECT().GetPseudonymizedForLLM(gomock.Any(), "df_customers_1").Return(models.PipelineResult{
		Success:            true,
		PseudonymizedTable: &pseudonymized,
		Metadata: models.PipelineMetadata{
			Verification: &models.VerificationResult{SafeForExternalUse: true},
		},
	})

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/pseudonymized", nil, viewerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.PipelineResult](t, rec)
	require.NotNil(t, res.Metadata.Verification)
	assert.True(t, res.Metadata.Verification.SafeForExternalUse)
}

func TestPseudonymized_Withheld(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().GetPseudonymizedForLLM(gomock.Any(), "df_customers_1").Return(models.PipelineResult{
		Message: "pseudonymized data withheld",
		Err:     service.ErrUnsafeForExternalUse,
	})

	rec := env.do(t, http.MethodGet, "/api/datasets/df_customers_1/pseudonymized", nil, viewerToken)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pseudonymized_table")
}

// ─────────────────────────────────────────────
// DELETE /api/sessions/{identifier}
// ─────────────────────────────────────────────

func TestCleanupSession(t *testing.T) {
	tests := []struct {
		name    string
		removed bool
		want    int
	}{
		{"removed", true, http.StatusOK},
		{"unknown", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.pipeline.EXPECT().CleanupSession(gomock.Any(), "customers").Return(tt.removed)

			rec := env.do(t, http.MethodDelete, "/api/sessions/customers", nil, viewerToken)

			require.Equal(t, tt.want, rec.Code)
			res := decode[models.CleanupResponse](t, rec)
			assert.Equal(t, "customers", res.Identifier)
			assert.Equal(t, tt.removed, res.Removed)
		})
	}
}

func TestUploadDataset_RejectsInvalidIdentifier(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/datasets", models.UploadRequest{Identifier: "  ", Table: sampleTable()}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "identifier")
}

func TestUploadBatch_OverLimit(t *testing.T) {
	env := newTestEnv(t, WithMaxBatchUploads(1))

	uploads := []models.UploadRequest{
		{Identifier: "a", Table: sampleTable()},
		{Identifier: "b", Table: sampleTable()},
	}
	rec := env.do(t, http.MethodPost, "/api/datasets/batch", models.BatchUploadRequest{Uploads: uploads}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadBatch_DuplicateIdentifiers(t *testing.T) {
	env := newTestEnv(t)

	uploads := []models.UploadRequest{
		{Identifier: "a", Table: sampleTable()},
		{Identifier: "a", Table: sampleTable()},
	}
	rec := env.do(t, http.MethodPost, "/api/datasets/batch", models.BatchUploadRequest{Uploads: uploads}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
