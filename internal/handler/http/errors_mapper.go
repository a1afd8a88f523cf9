package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-privacy-pipeline/internal/merge"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/internal/store"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidQueryParam:    http.StatusBadRequest,
	ErrIntegrityCheckFailed: http.StatusBadRequest,
	ErrUnmaskScopeRequired:  http.StatusForbidden,

	models.ErrValidation:               http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptyTable:              http.StatusBadRequest,
	service.ErrSessionNotFound:         http.StatusNotFound,
	service.ErrUnsafeForExternalUse:    http.StatusUnprocessableEntity,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	merge.ErrMerge:                     http.StatusUnprocessableEntity,

	store.ErrStorageNotFound:        http.StatusNotFound,
	store.ErrInvalidStorageKey:      http.StatusBadRequest,
	store.ErrUnsupportedPayload:     http.StatusBadRequest,
	store.ErrDecryption:             http.StatusInternalServerError,
	store.ErrIntegrity:              http.StatusInternalServerError,
	store.ErrCorruptedEntry:         http.StatusInternalServerError,
	store.ErrWrongMasterPassword:    http.StatusInternalServerError,
	store.ErrMasterPasswordRequired: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         http.StatusServiceUnavailable,
}

// statusFromError maps err to an HTTP status. Errors naming both a client
// mistake and a server fault resolve to the lower status.
func statusFromError(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	status := 0
	for target, s := range errorStatusMap {
		if errors.Is(err, target) && (status == 0 || s < status) {
			status = s
		}
	}
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}
