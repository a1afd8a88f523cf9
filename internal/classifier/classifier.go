// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package classifier decides which columns of a table hold personal data.
//
// Every [Rule] scores a column twice: once for a keyword in the column name
// (0.4 × weight) and once for the share of sample values matching one of its
// patterns (0.8 × weight × share). The best scoring rule wins; ties keep the
// earlier rule. A column is sensitive when its score reaches the threshold.
package classifier

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const (
	// DefaultThreshold is the default sensitivity threshold.
	DefaultThreshold = 0.6

	// SampleSize is the number of non-empty values inspected per column.
	SampleSize = 5
	// TableSampleSize is the number of non-null values taken from each
	// column of a table before cleaning.
	TableSampleSize = 10

	keywordFactor = 0.4
	patternFactor = 0.8

	highConfidence   = 0.8
	mediumConfidence = 0.5
)

// Classifier holds a compiled rule set and a sensitivity threshold. It is
// safe for concurrent use.
type Classifier struct {
	mu        sync.RWMutex
	rules     []Rule
	threshold float64

	logger *logger.Logger
}

// New builds a classifier from the default rules followed by extra. A
// threshold outside [0,1] is rejected.
func New(threshold float64, log *logger.Logger, extra ...Rule) (*Classifier, error) {
	if !inUnitRange(threshold) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	rules := append(DefaultRules(), extra...)
	for i := range rules {
		if err := rules[i].compile(); err != nil {
			return nil, err
		}
	}

	return &Classifier{
		rules:     rules,
		threshold: threshold,
		logger:    log,
	}, nil
}

// Threshold returns the current sensitivity threshold.
func (c *Classifier) Threshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

// SetThreshold changes the sensitivity threshold.
func (c *Classifier) SetThreshold(threshold float64) error {
	if !inUnitRange(threshold) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	c.mu.Lock()
	c.threshold = threshold
	c.mu.Unlock()

	c.logger.Info().Float64("threshold", threshold).Msg("sensitivity threshold changed")
	return nil
}

// Rules returns a copy of the active rule set.
func (c *Classifier) Rules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r
		out[i].Keywords = append([]string(nil), r.Keywords...)
		out[i].Patterns = append([]string(nil), r.Patterns...)
		out[i].compiled = nil
	}
	return out
}

// RuleCount returns the number of active rules.
func (c *Classifier) RuleCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}

// Classify scores column against every rule using up to [SampleSize]
// non-empty samples.
func (c *Classifier) Classify(column string, samples []string) models.FieldIdentificationResult {
	cleaned := make([]string, 0, SampleSize)
	for _, s := range samples {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
			if len(cleaned) == SampleSize {
				break
			}
		}
	}
	if len(cleaned) == 0 {
		return models.FieldIdentificationResult{
			FieldType: models.FieldGeneral,
			Method:    models.MethodNoData,
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	lowerColumn := strings.ToLower(column)

	var (
		best     *Rule
		bestConf float64
		bestHow  models.DetectionMethod
		bestPat  string
	)
	for i := range c.rules {
		rule := &c.rules[i]

		var (
			conf    float64
			method  models.DetectionMethod
			pattern string
		)
		if rule.matchesColumn(lowerColumn) {
			conf += keywordFactor * rule.Weight
			method = models.MethodColumnName
		}

		matches := 0
		for _, v := range cleaned {
			if p, ok := rule.matchValue(v); ok {
				matches++
				pattern = p
			}
		}
		if matches > 0 {
			conf += float64(matches) / float64(len(cleaned)) * patternFactor * rule.Weight
			if method == "" {
				method = models.MethodValuePattern
			} else {
				method = models.MethodHybrid
			}
		}

		if conf > bestConf {
			best, bestConf, bestHow, bestPat = rule, conf, method, pattern
		}
	}

	if best == nil {
		return models.FieldIdentificationResult{
			FieldType: models.FieldGeneral,
			Method:    models.MethodNoMatch,
		}
	}

	if bestConf > 1 {
		bestConf = 1
	}

	return models.FieldIdentificationResult{
		FieldType:      best.FieldType,
		Confidence:     bestConf,
		MatchedPattern: bestPat,
		Method:         bestHow,
		IsSensitive:    bestConf >= c.threshold,
	}
}

// ClassifyTable classifies every column of t in a single pass.
func (c *Classifier) ClassifyTable(t models.Table) map[string]models.FieldIdentificationResult {
	results := make(map[string]models.FieldIdentificationResult, len(t.Columns))
	for _, col := range t.Columns {
		res := c.Classify(col, t.NonNullSample(col, TableSampleSize))
		results[col] = res

		c.logger.Debug().
			Str("column", col).
			Str("field_type", string(res.FieldType)).
			Float64("confidence", res.Confidence).
			Msg("column classified")
	}
	return results
}

// SensitiveColumns returns the sensitive columns of t in column order.
func (c *Classifier) SensitiveColumns(t models.Table) []string {
	return SensitiveFrom(t.Columns, c.ClassifyTable(t))
}

// SensitiveFrom filters columns down to those whose result is sensitive,
// keeping the order of columns.
func SensitiveFrom(columns []string, results map[string]models.FieldIdentificationResult) []string {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if results[col].IsSensitive {
			out = append(out, col)
		}
	}
	return out
}

// Summary classifies t and aggregates the results.
func (c *Classifier) Summary(t models.Table) models.FieldSummary {
	return Summarize(t.Columns, c.ClassifyTable(t))
}

// Summarize aggregates already computed results for columns.
func Summarize(columns []string, results map[string]models.FieldIdentificationResult) models.FieldSummary {
	s := models.FieldSummary{
		TotalFields:      len(columns),
		FieldTypeCounts:  make(map[models.FieldType]int),
		HighConfidence:   make([]string, 0),
		MediumConfidence: make([]string, 0),
		LowConfidence:    make([]string, 0),
		Results:          results,
	}

	for _, col := range columns {
		res := results[col]
		s.FieldTypeCounts[res.FieldType]++
		if res.IsSensitive {
			s.SensitiveFields++
		}

		switch {
		case res.Confidence >= highConfidence:
			s.HighConfidence = append(s.HighConfidence, col)
		case res.Confidence >= mediumConfidence:
			s.MediumConfidence = append(s.MediumConfidence, col)
		default:
			s.LowConfidence = append(s.LowConfidence, col)
		}
	}

	if s.TotalFields > 0 {
		s.SensitivityPercent = float64(s.SensitiveFields) / float64(s.TotalFields) * 100
	}
	return s
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
