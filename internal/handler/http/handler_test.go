package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/mock"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	viewerToken  = "viewer-token"
	unmaskToken  = "unmask-token"
	invalidToken = "invalid-token"
)

type testEnv struct {
	handler  *Handler
	router   http.Handler
	pipeline *mock.MockPipeline
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// newTestEnv wires a Handler to gomock services. The auth mock accepts
// viewerToken (no scopes) and unmaskToken (unmask scope) and rejects
// everything else.
func newTestEnv(t *testing.T, opts ...Option) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := testEnv{
		pipeline: mock.NewMockPipeline(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	env.auth.EXPECT().ParseToken(gomock.Any(), viewerToken).
		Return(models.Token{Operator: "viewer"}, nil).AnyTimes()
	env.auth.EXPECT().ParseToken(gomock.Any(), unmaskToken).
		Return(models.Token{Operator: "auditor", Scopes: []string{models.ScopeUnmask}}, nil).AnyTimes()
	env.auth.EXPECT().ParseToken(gomock.Any(), invalidToken).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	env.handler = NewHandler(&service.Services{
		Pipeline:       env.pipeline,
		AuthService:    env.auth,
		AppInfoService: env.appInfo,
	}, logger.Nop(), opts...)
	env.router = env.handler.Init()

	return env
}

func (e testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sampleTable() models.Table {
	return models.NewTable([]string{"Account ID", "Email"}, []string{"ACCT1001", "john@example.com"})
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.False(t, h.hashUploads)
}

func TestNewHandler_UploadHashingOption(t *testing.T) {
	assert.True(t, NewHandler(&service.Services{}, logger.Nop(), WithUploadHashing("key")).hashUploads)
	assert.False(t, NewHandler(&service.Services{}, logger.Nop(), WithUploadHashing("")).hashUploads)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
