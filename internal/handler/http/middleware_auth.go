package http

import (
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the verified token in the
// request context under [utils.TokenCtxKey]. Handlers read the granted
// scopes from there.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, is not a bearer token, or carries an expired or invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}

// requireUnmask reports whether the request may see original values. On
// refusal it has already written the 403 response.
func requireUnmask(w http.ResponseWriter, r *http.Request) bool {
	token, ok := utils.GetTokenFromContext(r.Context())
	if ok && token.HasScope(models.ScopeUnmask) {
		logger.FromRequest(r).Info().Str("operator", token.Operator).Msg("unmasked access granted")
		return true
	}

	logger.FromRequest(r).Warn().Str("operator", token.Operator).Msg("unmasked access refused")
	writeError(w, r, ErrUnmaskScopeRequired)
	return false
}
