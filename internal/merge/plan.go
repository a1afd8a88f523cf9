package merge

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// canonicalKey trims and NFC-normalises a join key. A nil or blank key is
// reported as missing.
func canonicalKey(v models.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	s := norm.NFC.String(strings.TrimSpace(*v))
	if s == "" {
		return "", false
	}
	return s, true
}

// keyedSide holds the canonical key of every row of one original table.
type keyedSide struct {
	keys    []string // canonical key per row, "" when missing
	present []bool
	missing int
}

func indexSide(t models.Table, keyIdx int) keyedSide {
	s := keyedSide{
		keys:    make([]string, len(t.Rows)),
		present: make([]bool, len(t.Rows)),
	}
	for i, row := range t.Rows {
		k, ok := canonicalKey(row[keyIdx])
		if !ok {
			s.missing++
			continue
		}
		s.keys[i], s.present[i] = k, true
	}
	return s
}

// pair is one output row: a row index into A and into B, -1 when the side
// does not contribute.
type pair struct {
	a, b int
}

// buildPlan computes the join on the original keys. The same plan is
// applied to the original and the masked tables so both views have the
// same rows.
//
// A rows come first in their order, each followed by its B matches in B
// order. For right and outer joins the B rows without a match are appended
// in B order.
func buildPlan(a, b keyedSide, strategy models.MergeStrategy) []pair {
	byKey := make(map[string][]int, len(b.keys))
	for i, k := range b.keys {
		if b.present[i] {
			byKey[k] = append(byKey[k], i)
		}
	}

	keepA := strategy == models.MergeLeft || strategy == models.MergeOuter
	keepB := strategy == models.MergeRight || strategy == models.MergeOuter

	plan := make([]pair, 0, len(a.keys))
	seenA := make(map[string]struct{}, len(a.keys))
	for i, k := range a.keys {
		if !a.present[i] {
			continue
		}
		seenA[k] = struct{}{}

		matches := byKey[k]
		if len(matches) == 0 {
			if keepA {
				plan = append(plan, pair{a: i, b: -1})
			}
			continue
		}
		for _, j := range matches {
			plan = append(plan, pair{a: i, b: j})
		}
	}

	if keepB {
		for j, k := range b.keys {
			if !b.present[j] {
				continue
			}
			if _, ok := seenA[k]; !ok {
				plan = append(plan, pair{a: -1, b: j})
			}
		}
	}

	return plan
}

// layout describes the output columns of a merge.
type layout struct {
	keyColumn  string
	keyIdxA    int
	keyIdxB    int
	columnsA   []int // non-key column indexes of A
	columnsB   []int
	outColumns []string
}

func newLayout(a, b models.DatasetBundle, tagA, tagB string) (layout, error) {
	l := layout{
		keyColumn: a.KeyColumn,
		keyIdxA:   a.Original.ColumnIndex(a.KeyColumn),
		keyIdxB:   b.Original.ColumnIndex(b.KeyColumn),
	}

	l.outColumns = append(l.outColumns, l.keyColumn)
	for i, c := range a.Original.Columns {
		if i != l.keyIdxA {
			l.columnsA = append(l.columnsA, i)
			l.outColumns = append(l.outColumns, tagA+c)
		}
	}
	for i, c := range b.Original.Columns {
		if i != l.keyIdxB {
			l.columnsB = append(l.columnsB, i)
			l.outColumns = append(l.outColumns, tagB+c)
		}
	}

	seen := make(map[string]struct{}, len(l.outColumns))
	for _, c := range l.outColumns {
		if _, dup := seen[c]; dup {
			return layout{}, newError("", "column %q appears twice after prefixing", c)
		}
		seen[c] = struct{}{}
	}

	return l, nil
}

// apply materialises plan over a pair of tables that share the layout of
// the originals. keyOf supplies the output key cell of each plan row.
func (l layout) apply(plan []pair, a, b models.Table, keyOf func(p pair) models.Value) models.Table {
	out := models.Table{
		Columns: append([]string(nil), l.outColumns...),
		Rows:    make([]models.Row, 0, len(plan)),
	}

	for _, p := range plan {
		row := make(models.Row, 0, len(l.outColumns))
		row = append(row, keyOf(p))
		for _, idx := range l.columnsA {
			row = append(row, cell(a, p.a, idx))
		}
		for _, idx := range l.columnsB {
			row = append(row, cell(b, p.b, idx))
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

// cell copies t[row][col]; a negative row yields null.
func cell(t models.Table, row, col int) models.Value {
	if row < 0 {
		return nil
	}
	v := t.Rows[row][col]
	if v == nil {
		return nil
	}
	return models.Str(*v)
}
