package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-privacy-pipeline/internal/config"
	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/utils"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// applies the request timeout and bearer token from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version GETs /api/version/, which needs no token.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Upload POSTs req to /api/datasets. With a hash key configured, req.Hash is
// replaced by the HMAC of the table.
func (h *httpServerAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.PipelineResult, error) {
	if h.hashKey != "" {
		hash, err := utils.HashTable(req.Table, h.hashKey)
		if err != nil {
			return models.PipelineResult{}, fmt.Errorf("upload hash: %w", err)
		}
		req.Hash = hash
	}

	resp, err := h.jsonRequest(ctx, req).Post("/api/datasets")
	if err != nil {
		return models.PipelineResult{}, fmt.Errorf("upload request: %w", err)
	}
	return decodeResult[models.PipelineResult](resp, "upload")
}

func (h *httpServerAdapter) UploadBatch(ctx context.Context, uploads []models.UploadRequest) (models.BatchUploadResponse, error) {
	resp, err := h.jsonRequest(ctx, models.BatchUploadRequest{Uploads: uploads}).Post("/api/datasets/batch")
	if err != nil {
		return models.BatchUploadResponse{}, fmt.Errorf("batch upload request: %w", err)
	}
	return decodeResult[models.BatchUploadResponse](resp, "batch upload")
}

func (h *httpServerAdapter) ListDatasets(ctx context.Context) ([]models.DatasetInfo, error) {
	resp, err := h.authedRequest(ctx).Get("/api/datasets")
	if err != nil {
		return nil, fmt.Errorf("list datasets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list []models.DatasetInfo
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list datasets response: %w", err)
	}
	return list, nil
}

func (h *httpServerAdapter) Display(ctx context.Context, storageKey string, privacy bool) (models.PipelineResult, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", storageKey).
		SetQueryParam("privacy", strconv.FormatBool(privacy)).
		Get("/api/datasets/{key}/display")
	if err != nil {
		return models.PipelineResult{}, fmt.Errorf("display request: %w", err)
	}
	return decodeResult[models.PipelineResult](resp, "display")
}

func (h *httpServerAdapter) SetDisplayPrivacy(ctx context.Context, storageKey string, enabled bool) (models.PipelineResult, error) {
	resp, err := h.jsonRequest(ctx, models.PrivacyToggleRequest{Enabled: enabled}).
		SetPathParam("key", storageKey).
		Put("/api/datasets/{key}/display/privacy")
	if err != nil {
		return models.PipelineResult{}, fmt.Errorf("display privacy request: %w", err)
	}
	return decodeResult[models.PipelineResult](resp, "display privacy")
}

func (h *httpServerAdapter) Pseudonymized(ctx context.Context, storageKey string) (models.PipelineResult, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", storageKey).
		Get("/api/datasets/{key}/pseudonymized")
	if err != nil {
		return models.PipelineResult{}, fmt.Errorf("pseudonymized request: %w", err)
	}
	return decodeResult[models.PipelineResult](resp, "pseudonymized")
}

func (h *httpServerAdapter) Merge(ctx context.Context, req models.MergeRequest) (models.MergeResult, error) {
	resp, err := h.jsonRequest(ctx, req).Post("/api/merge")
	if err != nil {
		return models.MergeResult{}, fmt.Errorf("merge request: %w", err)
	}
	return decodeResult[models.MergeResult](resp, "merge")
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.PipelineStatus, error) {
	resp, err := h.authedRequest(ctx).Get("/api/status")
	if err != nil {
		return models.PipelineStatus{}, fmt.Errorf("status request: %w", err)
	}
	return decodeResult[models.PipelineStatus](resp, "status")
}

func (h *httpServerAdapter) CleanupSession(ctx context.Context, identifier string) (models.CleanupResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("identifier", identifier).
		Delete("/api/sessions/{identifier}")
	if err != nil {
		return models.CleanupResponse{}, fmt.Errorf("cleanup request: %w", err)
	}
	return decodeResult[models.CleanupResponse](resp, "cleanup")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// decodeResult decodes the body into T whatever the status, then maps the
// status. A failed pipeline call still returns its partial result.
func decodeResult[T any](resp *resty.Response, op string) (T, error) {
	var v T
	decodeErr := json.Unmarshal(resp.Body(), &v)

	if err := mapHTTPError(resp); err != nil {
		return v, err
	}
	if decodeErr != nil {
		return v, fmt.Errorf("decode %s response: %w", op, decodeErr)
	}
	return v, nil
}
