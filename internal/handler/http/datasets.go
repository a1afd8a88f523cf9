package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/internal/validators"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// uploadDataset runs the ingest workflow on one table.
func (h *Handler) uploadDataset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDataset").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := h.validator.Validate(r.Context(), req, validators.FieldIdentifier, validators.FieldMetadata); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDataset").Msg("upload request rejected")
		writeError(w, r, err)
		return
	}

	result := h.services.Pipeline.ProcessUpload(r.Context(), req.Table, req.Identifier, req.Metadata)
	if !result.Success {
		log.Err(result.Err).Str("identifier", req.Identifier).Msg("upload failed")
	}

	writeResult(w, r, result, result.Success, result.Err, http.StatusCreated)
}

// uploadBatch processes several tables concurrently. The response is 200
// with one result per upload, in request order, whatever their outcome.
func (h *Handler) uploadBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BatchUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadBatch").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadBatch").Msg("batch request rejected")
		writeError(w, r, err)
		return
	}

	results := h.services.Pipeline.ProcessBatch(r.Context(), req.Uploads)

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
		}
	}
	log.Info().Int("uploads", len(results)).Int("failed", failed).Msg("batch processed")

	writeResult(w, r, models.BatchUploadResponse{Results: results, Failed: failed}, true, nil, http.StatusOK)
}

func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.Pipeline.ListStoredDatasets(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing datasets failed")
		writeError(w, r, err)
		return
	}

	writeResult(w, r, list, true, nil, http.StatusOK)
}

// display returns the dataset for the UI. privacy defaults to true; turning
// it off reveals original values and needs the unmask scope.
func (h *Handler) display(w http.ResponseWriter, r *http.Request) {
	privacy, err := boolQuery(r, "privacy", true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !privacy && !requireUnmask(w, r) {
		return
	}

	result := h.services.Pipeline.RetrieveForDisplay(r.Context(), chi.URLParam(r, "key"), privacy)
	writeResult(w, r, result, result.Success, result.Err, http.StatusOK)
}

// toggleDisplayPrivacy switches the global display visibility. Disabling
// privacy needs the unmask scope.
func (h *Handler) toggleDisplayPrivacy(w http.ResponseWriter, r *http.Request) {
	var req models.PrivacyToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.toggleDisplayPrivacy").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	if !req.Enabled && !requireUnmask(w, r) {
		return
	}

	result := h.services.Pipeline.ToggleDisplayPrivacy(r.Context(), chi.URLParam(r, "key"), req.Enabled)
	writeResult(w, r, result, result.Success, result.Err, http.StatusOK)
}

func (h *Handler) pseudonymized(w http.ResponseWriter, r *http.Request) {
	result := h.services.Pipeline.GetPseudonymizedForLLM(r.Context(), chi.URLParam(r, "key"))
	writeResult(w, r, result, result.Success, result.Err, http.StatusOK)
}

func (h *Handler) cleanupSession(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	removed := h.services.Pipeline.CleanupSession(r.Context(), identifier)

	status := http.StatusOK
	if !removed {
		status = http.StatusNotFound
	}
	if _, err := utils.WriteJSON(w, models.CleanupResponse{Identifier: identifier, Removed: removed}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func boolQuery(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrInvalidQueryParam
	}
	return v, nil
}
