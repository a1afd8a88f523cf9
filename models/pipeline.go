package models

import "time"

// ProcessingStats are the per-step timings of a single upload.
type ProcessingStats struct {
	StartedAt              time.Time     `json:"started_at"`
	EncryptionDuration     time.Duration `json:"encryption_time"`
	IdentificationDuration time.Duration `json:"identification_time"`
	PseudonymizeDuration   time.Duration `json:"pseudonymization_time"`
	MaskingDuration        time.Duration `json:"masking_time"`
	TotalDuration          time.Duration `json:"total_time"`
	Rows                   int           `json:"rows"`
	Columns                int           `json:"columns"`
}

// ComplianceInfo states which protections were applied to a result.
type ComplianceInfo struct {
	OriginalEncrypted   bool `json:"original_encrypted"`
	PseudonymizedForLLM bool `json:"pseudonymized_for_llm"`
	DisplayMasked       bool `json:"display_masked"`
}

// PipelineMetadata is attached to every successful pipeline result.
type PipelineMetadata struct {
	PIIFields      []string                             `json:"pii_fields_identified"`
	Identification map[string]FieldIdentificationResult `json:"identification_results"`
	Stats          *ProcessingStats                     `json:"processing_stats,omitempty"`
	Compliance     ComplianceInfo                       `json:"compliance"`
	Masking        map[string]ColumnMaskingMetadata     `json:"masking,omitempty"`
	Verification   *VerificationResult                  `json:"verification,omitempty"`
	RetrievedAt    *time.Time                           `json:"retrieved_at,omitempty"`
	PrivacyEnabled *bool                                `json:"privacy_enabled,omitempty"`
}

// PipelineResult is the structured outcome returned across the collaborator
// boundary. It is used instead of a Go error so that partial information,
// like identified PII fields, survives a failure in a later step.
type PipelineResult struct {
	Success            bool             `json:"success"`
	Message            string           `json:"message"`
	StorageKey         string           `json:"storage_key,omitempty"`
	PseudonymizedTable *Table           `json:"pseudonymized_table,omitempty"`
	DisplayTable       *Table           `json:"display_table,omitempty"`
	Metadata           PipelineMetadata `json:"metadata"`
	Errors             []string         `json:"errors,omitempty"`

	// Err is the cause of a failure, kept for status mapping.
	Err error `json:"-"`
}

// AnonymizationReport is the pseudonymizer self-check outcome.
type AnonymizationReport struct {
	Valid              bool               `json:"valid"`
	StructurePreserved bool               `json:"structure_preserved"`
	ColumnsChecked     []string           `json:"columns_checked"`
	PatternMatchRates  map[string]float64 `json:"pattern_match_rates"`
	Issues             []string           `json:"issues,omitempty"`
}

// VerificationResult is attached to data released to external consumers.
type VerificationResult struct {
	SafeForExternalUse bool     `json:"safe_for_external_use"`
	ChecksPerformed    []string `json:"checks_performed"`
	PotentialIssues    []string `json:"potential_issues,omitempty"`
}

// PipelineStatus reports the state of all pipeline components.
type PipelineStatus struct {
	Encryption            EncryptionStatus `json:"encryption"`
	ClassifierRules       int              `json:"classifier_rules"`
	SensitivityThreshold  float64          `json:"sensitivity_threshold"`
	MaskingThreshold      float64          `json:"masking_threshold"`
	ShowSensitive         bool             `json:"show_sensitive"`
	PseudonymSaltSet      bool             `json:"pseudonym_salt_configured"`
	ActiveSessions        int              `json:"active_sessions"`
	ProcessedDatasets     int              `json:"processed_datasets"`
	AverageProcessingTime time.Duration    `json:"average_processing_time"`
}

// DatasetInfo is one entry of the stored datasets listing, joined with the
// in-memory session when the dataset was uploaded by this process.
type DatasetInfo struct {
	StoredDataInfo
	Identifier string   `json:"identifier,omitempty"`
	PIIFields  []string `json:"pii_fields,omitempty"`
}
