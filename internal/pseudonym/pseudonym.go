// Package pseudonym replaces sensitive values with salted one-way tokens
// that are safe to hand to external analytics.
package pseudonym

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const (
	tokenHexLength = 16
	saltBytes      = 32

	// MinPatternMatchRate is the share of values in a pseudonymized column
	// that must look like tokens for the column to pass validation.
	MinPatternMatchRate = 0.8

	// Method names the pseudonymization scheme in summaries.
	Method = "SHA-256 with salt"
)

var tokenPattern = regexp.MustCompile(`^[A-Z]+_[0-9a-f]{16}$`)

var prefixes = map[models.FieldType]string{
	models.FieldAccountID:      "ACCT",
	models.FieldNationalID:     "NID",
	models.FieldEmail:          "EMAIL",
	models.FieldPhone:          "PHONE",
	models.FieldName:           "NAME",
	models.FieldAddress:        "ADDR",
	models.FieldPassport:       "PASS",
	models.FieldDriversLicense: "DL",
	models.FieldCreditCard:     "CARD",
	models.FieldBankAccount:    "BANK",
	models.FieldIPAddress:      "IP",
	models.FieldDateOfBirth:    "DOB",
	models.FieldGeneral:        "DATA",
}

// Prefix returns the token prefix of ft. Unknown types map to DATA.
func Prefix(ft models.FieldType) string {
	if p, ok := prefixes[ft]; ok {
		return p
	}
	return prefixes[models.FieldGeneral]
}

// IsToken reports whether v has the shape of a pseudonym.
func IsToken(v string) bool {
	return tokenPattern.MatchString(v)
}

// FieldClassifier detects sensitive columns for automatic pseudonymization.
type FieldClassifier interface {
	ClassifyTable(t models.Table) map[string]models.FieldIdentificationResult
}

// Pseudonymizer hashes values with a process-wide salt. No reverse mapping
// is kept anywhere.
type Pseudonymizer struct {
	salt       string
	configured bool
	classifier FieldClassifier
	logger     *logger.Logger
}

// Summary describes what pseudonymizing a table would do.
type Summary struct {
	TotalColumns         int      `json:"total_columns"`
	SensitiveColumns     int      `json:"sensitive_columns"`
	SensitiveColumnNames []string `json:"sensitive_column_names"`
	TotalRows            int      `json:"total_rows"`
	Method               string   `json:"anonymization_method"`
	SaltLength           int      `json:"salt_length"`
	Reversible           bool     `json:"reversible"`
}

// New returns a Pseudonymizer. An empty salt is replaced by 32 random bytes
// in hex, so tokens are only stable within the process.
func New(salt string, classifier FieldClassifier, log *logger.Logger) (*Pseudonymizer, error) {
	p := &Pseudonymizer{
		salt:       salt,
		configured: salt != "",
		classifier: classifier,
		logger:     log,
	}

	if salt == "" {
		b := make([]byte, saltBytes)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("error generating pseudonym salt: %w", err)
		}
		p.salt = hex.EncodeToString(b)
		log.Info().Msg("generated new pseudonymization salt")
	}

	return p, nil
}

// SaltConfigured reports whether the salt came from configuration.
func (p *Pseudonymizer) SaltConfigured() bool {
	return p.configured
}

// Token returns PREFIX_<16 hex> for value.
func (p *Pseudonymizer) Token(value string, ft models.FieldType) string {
	sum := sha256.Sum256([]byte(p.salt + value))
	return Prefix(ft) + "_" + hex.EncodeToString(sum[:])[:tokenHexLength]
}

// AnonymizeValue pseudonymizes one cell. Nulls stay null and empty strings
// stay empty.
func (p *Pseudonymizer) AnonymizeValue(v models.Value, ft models.FieldType) models.Value {
	if v == nil {
		return nil
	}
	if *v == "" {
		return models.Str("")
	}
	return models.Str(p.Token(*v, ft))
}

// AnonymizeTable pseudonymizes sensitive columns of t. A nil list detects
// them with the classifier; field types always come from the classifier.
func (p *Pseudonymizer) AnonymizeTable(t models.Table, sensitive []string) models.Table {
	results := p.classifier.ClassifyTable(t)
	if sensitive == nil {
		sensitive = sensitiveColumns(t.Columns, results)
	}

	types := make(map[string]models.FieldType, len(sensitive))
	for _, col := range sensitive {
		types[col] = results[col].FieldType
	}
	return p.AnonymizeColumns(t, types)
}

// AnonymizeColumns pseudonymizes the columns named in types using the given
// field type for each. Unknown columns are ignored. t is not modified.
func (p *Pseudonymizer) AnonymizeColumns(t models.Table, types map[string]models.FieldType) models.Table {
	out := t.Clone()
	for col, ft := range types {
		idx := out.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		for _, row := range out.Rows {
			row[idx] = p.AnonymizeValue(row[idx], ft)
		}
		p.logger.Debug().Str("column", col).Str("field_type", string(ft)).Msg("column pseudonymized")
	}
	return out
}

// Summarize reports which columns would be pseudonymized.
func (p *Pseudonymizer) Summarize(t models.Table) Summary {
	sensitive := sensitiveColumns(t.Columns, p.classifier.ClassifyTable(t))
	return Summary{
		TotalColumns:         len(t.Columns),
		SensitiveColumns:     len(sensitive),
		SensitiveColumnNames: sensitive,
		TotalRows:            t.Len(),
		Method:               Method,
		SaltLength:           len(p.salt),
		Reversible:           false,
	}
}

// Validate checks anonymized against original: the shape and columns are
// unchanged and, for each sensitive column, no original value survives and
// at least [MinPatternMatchRate] of the values are tokens. A nil list
// detects sensitive columns on the original.
func (p *Pseudonymizer) Validate(original, anonymized models.Table, sensitive []string) models.AnonymizationReport {
	report := models.AnonymizationReport{
		Valid:              true,
		StructurePreserved: original.SameShape(anonymized),
		ColumnsChecked:     make([]string, 0),
		PatternMatchRates:  make(map[string]float64),
	}
	if !report.StructurePreserved {
		report.Valid = false
		report.Issues = append(report.Issues, "table structure changed")
		return report
	}

	if sensitive == nil {
		sensitive = sensitiveColumns(original.Columns, p.classifier.ClassifyTable(original))
	}

	for _, col := range sensitive {
		idx := original.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		report.ColumnsChecked = append(report.ColumnsChecked, col)

		originals := make(map[string]struct{})
		for _, row := range original.Rows {
			if v := row[idx]; v != nil && *v != "" {
				originals[*v] = struct{}{}
			}
		}

		var total, tokens, leaked int
		for _, row := range anonymized.Rows {
			v := row[idx]
			if v == nil || *v == "" {
				continue
			}
			total++
			if IsToken(*v) {
				tokens++
			}
			if _, ok := originals[*v]; ok {
				leaked++
			}
		}

		rate := 1.0
		if total > 0 {
			rate = float64(tokens) / float64(total)
		}
		report.PatternMatchRates[col] = rate

		if leaked > 0 {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("column %s: %d original values present", col, leaked))
		}
		if rate < MinPatternMatchRate {
			report.Valid = false
			report.Issues = append(report.Issues, fmt.Sprintf("column %s: only %.0f%% of values are pseudonyms", col, rate*100))
		}
	}

	return report
}

func sensitiveColumns(columns []string, results map[string]models.FieldIdentificationResult) []string {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if results[col].IsSensitive {
			out = append(out, col)
		}
	}
	return out
}
