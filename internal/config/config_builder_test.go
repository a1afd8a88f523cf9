package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without a storage directory
// is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultStorageDir(), cfg.Storage.Dir)
	assert.Equal(t, DefaultKDFIterations, cfg.Storage.KDFIterations)
	assert.InDelta(t, DefaultSensitivityThreshold, cfg.Privacy.SensitivityThreshold, 1e-9)
	assert.InDelta(t, DefaultMaskingThreshold, cfg.Privacy.MaskingThreshold, 1e-9)
	assert.Equal(t, DefaultPhonePrefixes, cfg.Privacy.PhonePrefixes)
	assert.Equal(t, DefaultKeyColumn, cfg.Merge.KeyColumn)
	assert.Equal(t, DefaultDisplayCap, cfg.Merge.DisplayCap)
	assert.Equal(t, DefaultBatchConcurrency, cfg.Workers.BatchConcurrency)
	assert.Equal(t, DefaultMaxBatchUploads, cfg.Workers.MaxBatchUploads)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier sources take priority over
// later ones and that zero fields fall through.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Merge: Merge{KeyColumn: "Customer"}},
		&StructuredConfig{App: App{Version: "9.9.9", TokenIssuer: "issuer"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "Customer", cfg.Merge.KeyColumn)
	assert.Equal(t, DefaultDisplayCap, cfg.Merge.DisplayCap)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "iterations below minimum",
			cfg:     &StructuredConfig{Storage: Storage{KDFIterations: 1000}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sensitivity threshold above one",
			cfg:     &StructuredConfig{Privacy: Privacy{SensitivityThreshold: 1.5}},
			wantErr: ErrInvalidPrivacyConfigs,
		},
		{
			name:    "identical source tags",
			cfg:     &StructuredConfig{Merge: Merge{SourceTagA: "x_", SourceTagB: "x_"}},
			wantErr: ErrInvalidMergeConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)
			b.withDefaults()

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DIR":            "/tmp/secure",
		"MERGE_KEY_COLUMN":       "Customer ID",
		"PRIVACY_PHONE_PREFIXES": "+852",
	})

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/secure", cfg.Storage.Dir)
	assert.Equal(t, "Customer ID", cfg.Merge.KeyColumn)
	assert.Equal(t, []string{"+852"}, cfg.Privacy.PhonePrefixes)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_BATCH_CONCURRENCY": "many"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "/srv/secure", "-key-column", "ID"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/srv/secure", b.configs[0].Storage.Dir)
	assert.Equal(t, "ID", b.configs[0].Merge.KeyColumn)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"dir": "/json/secure"},
		"server":  map[string]any{"request_timeout": "5s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/secure", b.configs[1].Storage.Dir)
	assert.Equal(t, 5*time.Second, b.configs[1].Server.RequestTimeout)
}

// TestWithJSON_EnvBeatsFile verifies that a value set by an earlier source
// is not overridden by the JSON file.
func TestWithJSON_EnvBeatsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"dir": "/json/secure"},
		"merge":   map[string]any{"display_cap": 3},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Storage:      Storage{Dir: "/env/secure"},
	})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "/env/secure", cfg.Storage.Dir)
	assert.Equal(t, 3, cfg.Merge.DisplayCap)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the highest priority source naming
// a file decides which file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// ── client config ─────────────────────────────────────────────────────────────

func TestGetClientConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:8080",
		"ADAPTER_TOKEN":   "tok",
		"APP_HASH_KEY":    "hk",
	})

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "tok", cfg.Adapter.Token)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.NoError(t, cfg.Validate())
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter.HTTPAddress = "localhost:8080"
	assert.NoError(t, cfg.Validate())
}
