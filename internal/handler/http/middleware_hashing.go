package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// uploadHashing checks the integrity hash of an upload. The client sends
// the hex HMAC-SHA256 of the JSON-encoded table in the hash field; the
// middleware re-encodes the decoded table and compares. It is a no-op when
// upload hashing is disabled.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hashUploads {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.uploadHashing").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.UploadRequest
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to decode JSON")
			writeError(w, r, ErrInvalidJSON)
			return
		}

		payloadBytes, err := json.Marshal(req.Table)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to marshal table")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		hashedBody := hex.EncodeToString(utils.Hash(payloadBytes))
		if hashedBody != req.Hash {
			log.Error().Str("func", "*Handler.uploadHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			writeError(w, r, ErrIntegrityCheckFailed)
			return
		}

		log.Debug().Str("func", "*Handler.uploadHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
