package models

// UploadRequest is the body of POST /api/datasets.
//
// Hash is the optional hex HMAC-SHA256 of the JSON encoded Table, required
// only when the server is configured with an integrity hash key.
type UploadRequest struct {
	Identifier string         `json:"identifier"`
	Table      Table          `json:"table"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Hash       string         `json:"hash,omitempty"`
}

// MergeRequest is the body of POST /api/merge. DatasetA and DatasetB are
// dataset identifiers previously uploaded in the current server process.
type MergeRequest struct {
	DatasetA      string `json:"dataset_a"`
	DatasetB      string `json:"dataset_b"`
	KeyColumn     string `json:"key_column,omitempty"`
	Strategy      string `json:"strategy,omitempty"`
	ShowSensitive bool   `json:"show_sensitive"`
}

// CleanupResponse is returned by DELETE /api/sessions/{identifier}.
type CleanupResponse struct {
	Identifier string `json:"identifier"`
	Removed    bool   `json:"removed"`
}

// BatchUploadRequest is the body of POST /api/datasets/batch.
type BatchUploadRequest struct {
	Uploads []UploadRequest `json:"uploads"`
}

// BatchUploadResponse carries one result per upload in request order.
type BatchUploadResponse struct {
	Results []PipelineResult `json:"results"`
	Failed  int              `json:"failed"`
}

// PrivacyToggleRequest is the body of PUT /api/datasets/{key}/display/privacy.
type PrivacyToggleRequest struct {
	Enabled bool `json:"enabled"`
}
