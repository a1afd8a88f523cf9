package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// PreviewRows is the number of table rows a markdown report shows.
const PreviewRows = 5

// MarkdownWriter outputs results as GitHub-flavored markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WritePipeline outputs the field identification, the verification result
// when present and a preview of the returned table.
func (w *MarkdownWriter) WritePipeline(result models.PipelineResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Pipeline Report")
	md.PlainText("")
	rows := [][]string{
		{"Status", statusText(result.Success, result.Message)},
	}
	if result.StorageKey != "" {
		rows = append(rows, []string{"Storage Key", "`" + result.StorageKey + "`"})
	}
	if s := result.Metadata.Stats; s != nil {
		rows = append(rows,
			[]string{"Rows", strconv.Itoa(s.Rows)},
			[]string{"Columns", strconv.Itoa(s.Columns)},
			[]string{"Processing Time", s.TotalDuration.String()},
		)
	}
	md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
	md.PlainText("")

	w.writeIdentification(md, result.Metadata)
	w.writeVerification(md, result.Metadata.Verification)
	w.writeErrors(md, result.Errors)

	switch {
	case result.PseudonymizedTable != nil:
		w.writePreview(md, "Pseudonymized Preview", *result.PseudonymizedTable)
	case result.DisplayTable != nil:
		w.writePreview(md, "Display Preview", *result.DisplayTable)
	}

	return len(md.String()), md.Build()
}

// WriteMerge outputs the merge summary and the data quality report.
func (w *MarkdownWriter) WriteMerge(result models.MergeResult) (int, error) {
	md := markdown.NewMarkdown(w.output)
	meta := result.Metadata

	md.H1("Merge Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Status", statusText(result.Success, result.Message)},
			{"Strategy", string(meta.Strategy)},
			{"Key Column", "`" + meta.KeyColumn + "`"},
			{"Rows A", strconv.Itoa(meta.RowsA)},
			{"Rows B", strconv.Itoa(meta.RowsB)},
			{"Merged Rows", strconv.Itoa(meta.MergedRows)},
			{"Sensitive Values Shown", strconv.FormatBool(meta.ShowSensitive)},
		},
	})
	md.PlainText("")

	w.writeErrors(md, result.Errors)

	if q := result.QualityReport; q != nil {
		w.writeQuality(md, *q, meta.ShowSensitive)
	}
	if result.DisplayTable != nil {
		w.writePreview(md, "Merged Preview", *result.DisplayTable)
	}

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeIdentification(md *markdown.Markdown, meta models.PipelineMetadata) {
	if len(meta.Identification) == 0 {
		return
	}

	md.H2("Field Identification")
	md.PlainText("")

	columns := make([]string, 0, len(meta.Identification))
	for c := range meta.Identification {
		columns = append(columns, c)
	}
	slices.Sort(columns)

	rows := make([][]string, 0, len(columns))
	for _, c := range columns {
		r := meta.Identification[c]
		sensitive := "no"
		if r.IsSensitive {
			sensitive = "**yes**"
		}
		rows = append(rows, []string{c, string(r.FieldType), percent(r.Confidence), string(r.Method), sensitive})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Column", "Type", "Confidence", "Method", "Sensitive"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("%d of %d columns hold personal data.", len(meta.PIIFields), len(columns))
	md.PlainText("")
}

func (w *MarkdownWriter) writeVerification(md *markdown.Markdown, v *models.VerificationResult) {
	if v == nil {
		return
	}

	md.H2("Verification")
	md.PlainText("")
	md.BulletList(v.ChecksPerformed...)
	md.PlainText("")

	if v.SafeForExternalUse {
		md.Tip("Pseudonymized data passed every check and is safe for external use.")
	} else {
		md.Cautionf("Pseudonymized data failed verification with %d issue(s) and was withheld.", len(v.PotentialIssues))
		md.PlainText("")
		md.BulletList(v.PotentialIssues...)
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeQuality(md *markdown.Markdown, q models.DataQualityReport, showSensitive bool) {
	md.H2("Data Quality")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "A", "B"},
		Rows: [][]string{
			{"Records", strconv.Itoa(q.TotalRecordsA), strconv.Itoa(q.TotalRecordsB)},
			{"Unmatched identifiers", strconv.Itoa(q.UnmatchedACount), strconv.Itoa(q.UnmatchedBCount)},
			{"Duplicate rows", strconv.Itoa(q.DuplicateACount), strconv.Itoa(q.DuplicateBCount)},
			{"Missing keys", strconv.Itoa(q.MissingKeys["a"]), strconv.Itoa(q.MissingKeys["b"])},
		},
	})
	md.PlainText("")
	md.PlainTextf("Matched identifiers: **%d**, match rate: **%s**, quality score: **%s**.",
		q.MatchedIdentifiers, percent(q.MatchRate), percent(q.QualityScore))
	md.PlainText("")

	switch {
	case q.QualityScore >= 0.9:
		md.Tip("The datasets align well.")
	case q.QualityScore >= 0.7:
		md.Note("Most identifiers match. Review the unmatched identifiers below.")
	case q.QualityScore >= 0.5:
		md.Warningf("Only %s of identifiers match.", percent(q.MatchRate))
	default:
		md.Cautionf("Poor alignment: quality score %s.", percent(q.QualityScore))
	}
	md.PlainText("")

	// Identifier lists are original keys; they are listed only when the
	// caller asked for sensitive values.
	if !showSensitive {
		return
	}
	if len(q.UnmatchedA) > 0 {
		md.H3(fmt.Sprintf("Unmatched in A (%d)", q.UnmatchedACount))
		md.BulletList(q.UnmatchedA...)
		md.PlainText("")
	}
	if len(q.UnmatchedB) > 0 {
		md.H3(fmt.Sprintf("Unmatched in B (%d)", q.UnmatchedBCount))
		md.BulletList(q.UnmatchedB...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, errs []string) {
	if len(errs) == 0 {
		return
	}
	md.H2("Errors")
	md.PlainText("")
	md.BulletList(errs...)
	md.PlainText("")
}

func (w *MarkdownWriter) writePreview(md *markdown.Markdown, title string, t models.Table) {
	md.H2(title)
	md.PlainText("")

	if t.Len() == 0 {
		md.PlainText("No rows.")
		md.PlainText("")
		return
	}

	n := min(t.Len(), PreviewRows)
	rows := make([][]string, 0, n)
	for _, row := range t.Rows[:n] {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "-"
				continue
			}
			cells[i] = *v
		}
		rows = append(rows, cells)
	}
	md.Table(markdown.TableSet{Header: t.Columns, Rows: rows})
	md.PlainText("")
	if t.Len() > n {
		md.PlainTextf("Showing %d of %d rows.", n, t.Len())
		md.PlainText("")
	}
}

func statusText(ok bool, message string) string {
	if ok {
		return "✅ " + message
	}
	return "❌ " + message
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}
