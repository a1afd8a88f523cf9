// Package report renders pipeline and merge results for people and tools.
//
// Two formats are available:
//   - JSONWriter: the result as JSON, for scripts
//   - MarkdownWriter: a readable summary with the data quality report
//
// Writers only see what the result carries. A result built without
// show_sensitive renders masked identifiers only.
package report
