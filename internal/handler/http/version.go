package http

import (
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())
	if _, err := utils.WriteJSON(w, build, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing build info failed")
	}
}
