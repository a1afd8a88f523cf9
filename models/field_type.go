package models

import "fmt"

// FieldType is the closed set of column classifications produced by the
// field classifier.
type FieldType string

const (
	FieldAccountID      FieldType = "account_id"
	FieldNationalID     FieldType = "national_id"
	FieldEmail          FieldType = "email"
	FieldPhone          FieldType = "phone"
	FieldName           FieldType = "name"
	FieldAddress        FieldType = "address"
	FieldPassport       FieldType = "passport"
	FieldDriversLicense FieldType = "drivers_license"
	FieldCreditCard     FieldType = "credit_card"
	FieldBankAccount    FieldType = "bank_account"
	FieldIPAddress      FieldType = "ip_address"
	FieldDateOfBirth    FieldType = "date_of_birth"

	// FieldGeneral is the catch-all type. It is never treated as sensitive.
	FieldGeneral FieldType = "general"
)

// FieldTypes lists every FieldType in declaration order.
var FieldTypes = []FieldType{
	FieldAccountID,
	FieldNationalID,
	FieldEmail,
	FieldPhone,
	FieldName,
	FieldAddress,
	FieldPassport,
	FieldDriversLicense,
	FieldCreditCard,
	FieldBankAccount,
	FieldIPAddress,
	FieldDateOfBirth,
	FieldGeneral,
}

// IsValid reports whether f is one of the declared field types.
func (f FieldType) IsValid() bool {
	for _, t := range FieldTypes {
		if t == f {
			return true
		}
	}
	return false
}

// ParseFieldType converts s into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	f := FieldType(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown field type %q", s)
	}
	return f, nil
}

// DetectionMethod records which signal produced a classification.
type DetectionMethod string

const (
	MethodColumnName   DetectionMethod = "column_name"
	MethodValuePattern DetectionMethod = "value_pattern"
	MethodHybrid       DetectionMethod = "hybrid"
	MethodNoData       DetectionMethod = "no_data"
	MethodNoMatch      DetectionMethod = "no_match"
	MethodForced       DetectionMethod = "forced"
)

// FieldIdentificationResult is the outcome of classifying one column.
type FieldIdentificationResult struct {
	FieldType      FieldType       `json:"field_type"`
	Confidence     float64         `json:"confidence"`
	MatchedPattern string          `json:"matched_pattern,omitempty"`
	Method         DetectionMethod `json:"detection_method"`
	IsSensitive    bool            `json:"is_sensitive"`
}

// FieldSummary aggregates the classification of an entire table.
type FieldSummary struct {
	TotalFields        int                                  `json:"total_fields"`
	SensitiveFields    int                                  `json:"sensitive_fields"`
	FieldTypeCounts    map[FieldType]int                    `json:"field_type_counts"`
	HighConfidence     []string                             `json:"high_confidence_fields"`
	MediumConfidence   []string                             `json:"medium_confidence_fields"`
	LowConfidence      []string                             `json:"low_confidence_fields"`
	Results            map[string]FieldIdentificationResult `json:"results"`
	SensitivityPercent float64                              `json:"sensitivity_percentage"`
}
