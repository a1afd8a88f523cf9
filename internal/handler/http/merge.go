package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// merge joins two uploaded datasets. show_sensitive reveals original values
// in the display table and needs the unmask scope.
func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.merge").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.merge").Msg("merge request rejected")
		writeError(w, r, err)
		return
	}

	strategy, err := models.ParseMergeStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.ShowSensitive && !requireUnmask(w, r) {
		return
	}

	result := h.services.Pipeline.Merge(r.Context(), req.DatasetA, req.DatasetB, strategy, req.ShowSensitive, req.KeyColumn)
	if !result.Success {
		log.Err(result.Err).Str("dataset_a", req.DatasetA).Str("dataset_b", req.DatasetB).Msg("merge failed")
	}

	writeResult(w, r, result, result.Success, result.Err, http.StatusOK)
}
