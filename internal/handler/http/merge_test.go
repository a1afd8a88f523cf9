package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-privacy-pipeline/internal/merge"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

func TestMerge_Success(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().
		Merge(gomock.Any(), "customers", "purchases", models.MergeOuter, false, "Account ID").
		Return(models.MergeResult{Success: true, QualityReport: &models.DataQualityReport{MatchedIdentifiers: 3}})

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{
		DatasetA:  "customers",
		DatasetB:  "purchases",
		KeyColumn: "Account ID",
		Strategy:  "OUTER",
	}, viewerToken)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[models.MergeResult](t, rec)
	assert.Equal(t, 3, res.QualityReport.MatchedIdentifiers)
}

func TestMerge_DefaultStrategyIsInner(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().
		Merge(gomock.Any(), "a", "b", models.MergeInner, false, "").
		Return(models.MergeResult{Success: true})

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a", DatasetB: "b"}, viewerToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMerge_UnknownStrategy(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a", DatasetB: "b", Strategy: "cross"}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMerge_ShowSensitiveNeedsScope(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a", DatasetB: "b", ShowSensitive: true}, viewerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMerge_ShowSensitiveWithScope(t *testing.T) {
	env := newTestEnv(t)
	env.pipeline.EXPECT().Merge(gomock.Any(), "a", "b", models.MergeInner, true, "").
		Return(models.MergeResult{Success: true})

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a", DatasetB: "b", ShowSensitive: true}, unmaskToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMerge_FailureStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown dataset", fmt.Errorf("dataset a %q: %w", "ghost", service.ErrSessionNotFound), http.StatusNotFound},
		{"missing key column", models.NewValidationError(merge.SideB, "Account ID", "join key column missing"), http.StatusBadRequest},
		{"unaligned views", &merge.Error{Side: merge.SideA, Reason: "masked table is not aligned"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.pipeline.EXPECT().Merge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.MergeResult{Message: "merge failed", Errors: []string{tt.err.Error()}, Err: tt.err})

			rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a", DatasetB: "b"}, viewerToken)

			require.Equal(t, tt.want, rec.Code)
			res := decode[models.MergeResult](t, rec)
			assert.Equal(t, []string{tt.err.Error()}, res.Errors)
		})
	}
}

func TestMerge_MissingDataset(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/merge", models.MergeRequest{DatasetA: "a"}, viewerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "dataset_b")
}
