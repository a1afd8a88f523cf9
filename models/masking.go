package models

// MaskingResult is the transient outcome of masking one value for display.
// IsMasked is true only when visibility is set to hide and the value was
// classified sensitive at or above the masking threshold.
type MaskingResult struct {
	OriginalValue Value     `json:"original_value"`
	MaskedValue   Value     `json:"masked_value"`
	FieldType     FieldType `json:"field_type"`
	Confidence    float64   `json:"confidence"`
	IsMasked      bool      `json:"is_masked"`
}

// ColumnMaskingMetadata is the per-column audit record produced while
// masking a table.
type ColumnMaskingMetadata struct {
	FieldType         FieldType `json:"field_type"`
	Confidence        float64   `json:"confidence"`
	MaskedCount       int       `json:"masked_count"`
	TotalCount        int       `json:"total_count"`
	MaskingPercentage float64   `json:"masking_percentage"`
}

// TableMaskingResult is returned by the display masker for a whole table.
type TableMaskingResult struct {
	Table       Table                            `json:"table"`
	Metadata    map[string]ColumnMaskingMetadata `json:"metadata"`
	TotalMasked int                              `json:"total_masked"`
	IsMasked    bool                             `json:"is_masked"`
	Message     string                           `json:"message"`
}
