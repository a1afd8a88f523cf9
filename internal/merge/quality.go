package merge

import (
	"slices"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// Side labels used in errors and in the missing key counts.
const (
	SideA = "a"
	SideB = "b"
)

// qualityReport is computed on the original keys only; masked values never
// influence overlap or duplicate detection.
func qualityReport(a, b keyedSide, displayCap int) models.DataQualityReport {
	idsA, dupA, dupCountA := distinct(a)
	idsB, dupB, dupCountB := distinct(b)

	var unmatchedA, unmatchedB []string
	matched := 0
	for k := range idsA {
		if _, ok := idsB[k]; ok {
			matched++
		} else {
			unmatchedA = append(unmatchedA, k)
		}
	}
	for k := range idsB {
		if _, ok := idsA[k]; !ok {
			unmatchedB = append(unmatchedB, k)
		}
	}
	slices.Sort(unmatchedA)
	slices.Sort(unmatchedB)

	report := models.DataQualityReport{
		TotalRecordsA:      len(a.keys),
		TotalRecordsB:      len(b.keys),
		MatchedIdentifiers: matched,
		UnmatchedA:         capList(unmatchedA, displayCap),
		UnmatchedB:         capList(unmatchedB, displayCap),
		UnmatchedACount:    len(unmatchedA),
		UnmatchedBCount:    len(unmatchedB),
		DuplicateA:         dupA,
		DuplicateB:         dupB,
		DuplicateACount:    dupCountA,
		DuplicateBCount:    dupCountB,
		MissingKeys:        map[string]int{SideA: a.missing, SideB: b.missing},
	}

	union := len(idsA) + len(idsB) - matched
	rows := len(a.keys) + len(b.keys)
	if union == 0 || rows == 0 {
		return report
	}

	report.MatchRate = float64(matched) / float64(union)
	duplicatePenalty := float64(dupCountA+dupCountB) / float64(rows)
	missingPenalty := float64(a.missing+b.missing) / float64(rows)
	report.QualityScore = clamp(report.MatchRate - duplicatePenalty - missingPenalty)

	return report
}

// distinct returns the set of present keys, the sorted identifiers seen more
// than once and the number of extra rows carrying them.
func distinct(s keyedSide) (map[string]struct{}, []string, int) {
	ids := make(map[string]struct{}, len(s.keys))
	dups := make(map[string]struct{})
	extra := 0
	for i, k := range s.keys {
		if !s.present[i] {
			continue
		}
		if _, ok := ids[k]; ok {
			dups[k] = struct{}{}
			extra++
			continue
		}
		ids[k] = struct{}{}
	}

	list := make([]string, 0, len(dups))
	for k := range dups {
		list = append(list, k)
	}
	slices.Sort(list)

	return ids, list, extra
}

func capList(list []string, limit int) []string {
	if list == nil {
		return []string{}
	}
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
