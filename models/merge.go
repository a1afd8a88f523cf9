package models

import (
	"fmt"
	"strings"
	"time"
)

// MergeStrategy selects the relational join performed by the merger.
type MergeStrategy string

const (
	MergeInner MergeStrategy = "inner"
	MergeLeft  MergeStrategy = "left"
	MergeRight MergeStrategy = "right"
	MergeOuter MergeStrategy = "outer"
)

// ParseMergeStrategy converts s (case-insensitive) into a MergeStrategy.
// An empty string selects [MergeInner].
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MergeInner:
		return MergeInner, nil
	case MergeLeft:
		return MergeLeft, nil
	case MergeRight:
		return MergeRight, nil
	case MergeOuter:
		return MergeOuter, nil
	default:
		return "", NewValidationError("", "strategy", fmt.Sprintf("unknown merge strategy %q", s))
	}
}

// DatasetBundle carries both forms of one processed dataset. Masked must be
// row-aligned with Original: same columns, same row count, same order.
type DatasetBundle struct {
	Name      string `json:"name"`
	Original  Table  `json:"original"`
	Masked    Table  `json:"masked"`
	KeyColumn string `json:"key_column"`
}

// DataQualityReport is computed on the original tables of a merge.
//
// DuplicateA and DuplicateB list each repeated identifier once; the counts
// hold the number of extra rows carrying an identifier already seen.
type DataQualityReport struct {
	TotalRecordsA      int            `json:"total_records_a"`
	TotalRecordsB      int            `json:"total_records_b"`
	MatchedIdentifiers int            `json:"matched_identifiers"`
	UnmatchedA         []string       `json:"unmatched_a"`
	UnmatchedB         []string       `json:"unmatched_b"`
	UnmatchedACount    int            `json:"unmatched_a_count"`
	UnmatchedBCount    int            `json:"unmatched_b_count"`
	DuplicateA         []string       `json:"duplicate_a"`
	DuplicateB         []string       `json:"duplicate_b"`
	DuplicateACount    int            `json:"duplicate_a_count"`
	DuplicateBCount    int            `json:"duplicate_b_count"`
	MissingKeys        map[string]int `json:"missing_keys"`
	MatchRate          float64        `json:"match_rate"`
	QualityScore       float64        `json:"quality_score"`
}

// MergeMetadata describes how a merge was executed.
type MergeMetadata struct {
	Strategy      MergeStrategy `json:"strategy"`
	KeyColumn     string        `json:"key_column"`
	ShowSensitive bool          `json:"show_sensitive"`
	RowsA         int           `json:"rows_a"`
	RowsB         int           `json:"rows_b"`
	MergedRows    int           `json:"merged_rows"`
	MergedColumns int           `json:"merged_columns"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
}

// MergeResult is the outcome of a dataset merge. On failure MergedTable and
// DisplayTable are nil and Errors names the side and cause.
type MergeResult struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	MergedTable   *Table             `json:"merged_table,omitempty"`
	DisplayTable  *Table             `json:"display_table,omitempty"`
	QualityReport *DataQualityReport `json:"quality_report,omitempty"`
	Metadata      MergeMetadata      `json:"metadata"`
	Errors        []string           `json:"errors,omitempty"`

	// Err is the cause of a failure, kept for status mapping.
	Err error `json:"-"`
}
