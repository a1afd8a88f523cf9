package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Dir            string `json:"dir"`
		MasterPassword string `json:"master_password"`
		CatalogDSN     string `json:"catalog_dsn"`
		KDFIterations  int    `json:"kdf_iterations"`
	} `json:"storage,omitempty"`

	Privacy struct {
		SensitivityThreshold float64  `json:"sensitivity_threshold"`
		MaskingThreshold     float64  `json:"masking_threshold"`
		PseudonymSalt        string   `json:"pseudonym_salt"`
		RulesFile            string   `json:"rules_file"`
		PhonePrefixes        []string `json:"phone_prefixes"`
		ShowSensitive        bool     `json:"show_sensitive"`
	} `json:"privacy,omitempty"`

	Merge struct {
		KeyColumn  string `json:"key_column"`
		DisplayCap int    `json:"display_cap"`
		SourceTagA string `json:"source_tag_a"`
		SourceTagB string `json:"source_tag_b"`
	} `json:"merge,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		BatchConcurrency int `json:"batch_concurrency"`
		MaxBatchUploads  int `json:"max_batch_uploads"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			Dir:            jsonCfg.Storage.Dir,
			MasterPassword: jsonCfg.Storage.MasterPassword,
			CatalogDSN:     jsonCfg.Storage.CatalogDSN,
			KDFIterations:  jsonCfg.Storage.KDFIterations,
		},
		Privacy: Privacy{
			SensitivityThreshold: jsonCfg.Privacy.SensitivityThreshold,
			MaskingThreshold:     jsonCfg.Privacy.MaskingThreshold,
			PseudonymSalt:        jsonCfg.Privacy.PseudonymSalt,
			RulesFile:            jsonCfg.Privacy.RulesFile,
			PhonePrefixes:        jsonCfg.Privacy.PhonePrefixes,
			ShowSensitive:        jsonCfg.Privacy.ShowSensitive,
		},
		Merge: Merge{
			KeyColumn:  jsonCfg.Merge.KeyColumn,
			DisplayCap: jsonCfg.Merge.DisplayCap,
			SourceTagA: jsonCfg.Merge.SourceTagA,
			SourceTagB: jsonCfg.Merge.SourceTagB,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			BatchConcurrency: jsonCfg.Workers.BatchConcurrency,
			MaxBatchUploads:  jsonCfg.Workers.MaxBatchUploads,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
