package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a rules file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// rulesFile is the on-disk layout. Custom rule files list their rules under
// custom_patterns; exported files use patterns. Both are accepted.
type rulesFile struct {
	SensitivityThreshold *float64 `json:"sensitivity_threshold,omitempty" yaml:"sensitivity_threshold,omitempty"`
	CustomPatterns       []Rule   `json:"custom_patterns,omitempty" yaml:"custom_patterns,omitempty"`
	Patterns             []Rule   `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadRules reads custom rules from a YAML or JSON file.
func LoadRules(path string) ([]Rule, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening rules file: %w", err)
	}
	defer f.Close()

	return ParseRules(f, format)
}

// ParseRules decodes rules from r and validates them.
func ParseRules(r io.Reader, format Format) ([]Rule, error) {
	var file rulesFile
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
			return nil, fmt.Errorf("error decoding yaml rules: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("error decoding json rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	rules := append(file.CustomPatterns, file.Patterns...)
	for i := range rules {
		if err := rules[i].compile(); err != nil {
			return nil, err
		}
		rules[i].compiled = nil
	}
	return rules, nil
}

// ExportRules writes the threshold and the active rule set to w.
func (c *Classifier) ExportRules(w io.Writer, format Format) error {
	threshold := c.Threshold()
	file := rulesFile{
		SensitivityThreshold: &threshold,
		Patterns:             c.Rules(),
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("error encoding yaml rules: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("error encoding json rules: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
