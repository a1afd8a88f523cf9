package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"hash_key": "security_hash",
			"version": "1.0.0"
		},
		"storage": {
			"dir": "/var/secure",
			"master_password": "pw",
			"catalog_dsn": "/var/catalog.db",
			"kdf_iterations": 200000
		},
		"privacy": {
			"sensitivity_threshold": 0.65,
			"masking_threshold": 0.55,
			"pseudonym_salt": "salt",
			"rules_file": "/etc/rules.yaml",
			"phone_prefixes": ["+852", "+44"],
			"show_sensitive": true
		},
		"merge": {
			"key_column": "Customer",
			"display_cap": 20,
			"source_tag_a": "left_",
			"source_tag_b": "right_"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "5s",
			"token": "tok"
		},
		"workers": { "batch_concurrency": 2 }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, Storage{Dir: "/var/secure", MasterPassword: "pw", CatalogDSN: "/var/catalog.db", KDFIterations: 200000}, cfg.Storage)

	assert.InDelta(t, 0.65, cfg.Privacy.SensitivityThreshold, 1e-9)
	assert.InDelta(t, 0.55, cfg.Privacy.MaskingThreshold, 1e-9)
	assert.Equal(t, "salt", cfg.Privacy.PseudonymSalt)
	assert.Equal(t, "/etc/rules.yaml", cfg.Privacy.RulesFile)
	assert.Equal(t, []string{"+852", "+44"}, cfg.Privacy.PhonePrefixes)
	assert.True(t, cfg.Privacy.ShowSensitive)

	assert.Equal(t, Merge{KeyColumn: "Customer", DisplayCap: 20, SourceTagA: "left_", SourceTagB: "right_"}, cfg.Merge)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second, Token: "tok"}, cfg.Adapter)
	assert.Equal(t, 2, cfg.Workers.BatchConcurrency)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// token_duration should be a duration string; make it invalid.
	jsonBody := `{
		"app": { "token_duration": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Privacy{}, cfg.Privacy)
	assert.Equal(t, Storage{}, cfg.Storage)
}
