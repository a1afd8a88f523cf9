package http

import (
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/internal/validators"
)

type Handler struct {
	services *service.Services

	// hashUploads requires an integrity hash on every upload. It is set
	// when an HMAC key is configured.
	hashUploads bool

	maxBatchUploads int
	validator       validators.Validator

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithUploadHashing enables the upload integrity check. The shared hasher
// pool must be initialized with the same key, see [utils.InitHasherPool].
func WithUploadHashing(hashKey string) Option {
	return func(h *Handler) {
		h.hashUploads = hashKey != ""
	}
}

// WithMaxBatchUploads limits the number of uploads in one batch request.
func WithMaxBatchUploads(n int) Option {
	return func(h *Handler) {
		h.maxBatchUploads = n
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.validator = validators.NewRequestValidator(h.maxBatchUploads)

	logger.Info().Bool("upload_hashing", h.hashUploads).Msg("http handler created")
	return h
}
