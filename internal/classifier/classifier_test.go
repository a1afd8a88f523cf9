package classifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

func newTestClassifier(t *testing.T, extra ...Rule) *Classifier {
	t.Helper()
	c, err := New(DefaultThreshold, logger.Nop(), extra...)
	require.NoError(t, err)
	return c
}

// ── Classify ──────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name          string
		column        string
		samples       []string
		wantType      models.FieldType
		wantConf      float64
		wantMethod    models.DetectionMethod
		wantSensitive bool
	}{
		{
			name:          "email by name and value",
			column:        "email",
			samples:       []string{"john@example.com", "jane@test.org"},
			wantType:      models.FieldEmail,
			wantConf:      1,
			wantMethod:    models.MethodHybrid,
			wantSensitive: true,
		},
		{
			name:          "regional phone",
			column:        "contact_phone",
			samples:       []string{"+852 1234 5678", "+852 9876 5432"},
			wantType:      models.FieldPhone,
			wantConf:      0.96,
			wantMethod:    models.MethodHybrid,
			wantSensitive: true,
		},
		{
			name:          "national id with check digit",
			column:        "hkid",
			samples:       []string{"A123456(7)", "AB987654(3)"},
			wantType:      models.FieldNationalID,
			wantConf:      1,
			wantMethod:    models.MethodHybrid,
			wantSensitive: true,
		},
		{
			name:          "ip by value only",
			column:        "col1",
			samples:       []string{"192.168.1.1", "10.0.0.1"},
			wantType:      models.FieldIPAddress,
			wantConf:      0.72,
			wantMethod:    models.MethodValuePattern,
			wantSensitive: true,
		},
		{
			name:          "cjk names below threshold",
			column:        "客户",
			samples:       []string{"陈大文", "李小明"},
			wantType:      models.FieldName,
			wantConf:      0.56,
			wantMethod:    models.MethodValuePattern,
			wantSensitive: false,
		},
		{
			name:          "tie keeps the earlier rule",
			column:        "x",
			samples:       []string{"12345678"},
			wantType:      models.FieldAccountID,
			wantConf:      0.72,
			wantMethod:    models.MethodValuePattern,
			wantSensitive: true,
		},
		{
			name:       "free text is general",
			column:     "notes",
			samples:    []string{"Likes golf", "Called twice"},
			wantType:   models.FieldGeneral,
			wantMethod: models.MethodNoMatch,
		},
		{
			name:       "no samples",
			column:     "email",
			samples:    nil,
			wantType:   models.FieldGeneral,
			wantMethod: models.MethodNoData,
		},
		{
			name:       "blank samples",
			column:     "email",
			samples:    []string{"", "   "},
			wantType:   models.FieldGeneral,
			wantMethod: models.MethodNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.column, tt.samples)
			assert.Equal(t, tt.wantType, res.FieldType)
			assert.InDelta(t, tt.wantConf, res.Confidence, 1e-9)
			assert.Equal(t, tt.wantMethod, res.Method)
			assert.Equal(t, tt.wantSensitive, res.IsSensitive)
		})
	}
}

func TestClassify_OnlyFirstFiveSamplesCount(t *testing.T) {
	c := newTestClassifier(t)

	samples := []string{"", "10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4", "10.0.0.5", "junk", "junk", "junk"}
	res := c.Classify("col", samples)

	assert.Equal(t, models.FieldIPAddress, res.FieldType)
	assert.InDelta(t, 0.72, res.Confidence, 1e-9)
}

func TestClassify_ConfidenceNeverExceedsOne(t *testing.T) {
	c := newTestClassifier(t)
	res := c.Classify("credit_card", []string{"4111111111111111"})
	assert.Equal(t, models.FieldCreditCard, res.FieldType)
	assert.LessOrEqual(t, res.Confidence, 1.0)
	assert.NotEmpty(t, res.MatchedPattern)
}

func TestSetThreshold(t *testing.T) {
	c := newTestClassifier(t)

	require.NoError(t, c.SetThreshold(0.8))
	assert.InDelta(t, 0.8, c.Threshold(), 1e-9)

	res := c.Classify("col1", []string{"192.168.1.1"})
	assert.False(t, res.IsSensitive)

	assert.ErrorIs(t, c.SetThreshold(1.5), ErrInvalidThreshold)
	assert.ErrorIs(t, c.SetThreshold(-0.1), ErrInvalidThreshold)
	assert.InDelta(t, 0.8, c.Threshold(), 1e-9)

	_, err := New(2, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

// ── tables ────────────────────────────────────────────────────────────────────

func customerTable() models.Table {
	return models.NewTable(
		[]string{"Email", "Notes", "IP"},
		[]string{"john@example.com", "vip", "192.168.1.1"},
		[]string{"jane@test.org", "called twice", "10.0.0.1"},
	)
}

func TestClassifyTableAndSensitiveColumns(t *testing.T) {
	c := newTestClassifier(t)
	table := customerTable()

	results := c.ClassifyTable(table)
	require.Len(t, results, 3)
	assert.Equal(t, models.FieldEmail, results["Email"].FieldType)
	assert.Equal(t, models.FieldGeneral, results["Notes"].FieldType)
	assert.Equal(t, models.FieldIPAddress, results["IP"].FieldType)

	assert.Equal(t, []string{"Email", "IP"}, c.SensitiveColumns(table))
}

func TestSummary(t *testing.T) {
	c := newTestClassifier(t)
	s := c.Summary(customerTable())

	assert.Equal(t, 3, s.TotalFields)
	assert.Equal(t, 2, s.SensitiveFields)
	assert.Equal(t, 1, s.FieldTypeCounts[models.FieldEmail])
	assert.Equal(t, 1, s.FieldTypeCounts[models.FieldGeneral])
	assert.Contains(t, s.HighConfidence, "Email")
	assert.Contains(t, s.LowConfidence, "Notes")
	assert.InDelta(t, 200.0/3.0, s.SensitivityPercent, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Zero(t, s.TotalFields)
	assert.Zero(t, s.SensitivityPercent)
}

// ── custom rules ──────────────────────────────────────────────────────────────

const staffRulesYAML = `
custom_patterns:
  - field_type: account_id
    column_keywords: [STAFF_NO]
    value_patterns: ['EMP\d{5}']
    confidence_weight: 0.9
    description: Staff numbers
`

func TestParseRules_YAMLCustomRule(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(staffRulesYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, models.FieldAccountID, rules[0].FieldType)
	assert.Equal(t, []string{"staff_no"}, rules[0].Keywords)

	c := newTestClassifier(t, rules...)
	res := c.Classify("staff_no", []string{"EMP12345"})
	assert.Equal(t, models.FieldAccountID, res.FieldType)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.Equal(t, `EMP\d{5}`, res.MatchedPattern)

	// custom patterns are anchored at the start of the value
	res = c.Classify("col", []string{"xEMP12345"})
	assert.NotEqual(t, `EMP\d{5}`, res.MatchedPattern)
}

func TestParseRules_JSONDefaultsWeight(t *testing.T) {
	body := `{"custom_patterns":[{"field_type":"email","column_keywords":["correo"],"value_patterns":[]}]}`
	rules, err := ParseRules(strings.NewReader(body), FormatJSON)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.InDelta(t, DefaultRuleWeight, rules[0].Weight, 1e-9)
}

func TestParseRules_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format Format
		target error
	}{
		{"unknown field type", `{"custom_patterns":[{"field_type":"ssn"}]}`, FormatJSON, ErrInvalidRule},
		{"bad regex", `{"custom_patterns":[{"field_type":"email","value_patterns":["("]}]}`, FormatJSON, ErrInvalidRule},
		{"weight out of range", `{"custom_patterns":[{"field_type":"email","confidence_weight":3}]}`, FormatJSON, ErrInvalidRule},
		{"unknown format", `{}`, Format("toml"), ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(tt.body), tt.format)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := ParseRules(strings.NewReader("{broken"), FormatJSON)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/etc/rules.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("rules.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("rules.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportRules_RoundTrip(t *testing.T) {
	c := newTestClassifier(t)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.ExportRules(&buf, format))
			assert.Contains(t, buf.String(), "sensitivity_threshold")

			rules, err := ParseRules(&buf, format)
			require.NoError(t, err)
			assert.Len(t, rules, len(DefaultRules()))
			assert.Equal(t, models.FieldAccountID, rules[0].FieldType)
			assert.Equal(t, DefaultRules()[2].Patterns, rules[2].Patterns)
		})
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	c := newTestClassifier(t)
	rules := c.Rules()
	rules[0].Keywords[0] = "changed"
	assert.NotEqual(t, "changed", c.Rules()[0].Keywords[0])
}

func TestRuleCount_IncludesExtraRules(t *testing.T) {
	extra := Rule{FieldType: models.FieldGeneral, Keywords: []string{"loyalty"}, Weight: 0.5}
	c, err := New(DefaultThreshold, logger.Nop(), extra)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultRules())+1, c.RuleCount())
}
