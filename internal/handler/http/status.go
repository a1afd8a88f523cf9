package http

import "net/http"

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.Pipeline.Status(r.Context()), true, nil, http.StatusOK)
}
