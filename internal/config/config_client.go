package config

import (
	"fmt"
	"time"
)

// ClientApp holds the application settings the command-line client needs.
type ClientApp struct {
	// HashKey is the HMAC key used to sign upload payloads.
	HashKey string
	// TokenSignKey, TokenIssuer and TokenDuration let the client mint an
	// operator token locally when it shares the server's sign key.
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token attached to every request.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address, timeout and token.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables, the optional JSON file named by CONFIG and the
// defaults. Command-line flags belong to the client's own commands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}

	return clientCfg, nil
}
