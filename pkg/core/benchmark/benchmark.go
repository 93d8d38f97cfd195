// Package benchmark compares headline ratios against industry reference
// values loaded from a YAML table.
package benchmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Table maps metric names to industry reference values.
type Table map[string]float64

// Built-in references used when no table is supplied. Values are broad
// cross-industry medians.
var defaultTable = Table{
	"roe":            15.0,
	"current_ratio":  2.0,
	"debt_to_equity": 1.0,
	"net_margin":     12.0,
}

// Load reads a benchmark table from a YAML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmark table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse benchmark table: %w", err)
	}
	return t, nil
}

// Comparison positions the company's headline ratios against the industry.
type Comparison struct {
	ROEVsIndustry          string `json:"roe_vs_industry"`
	CurrentRatioVsIndustry string `json:"current_ratio_vs_industry"`
	DebtToEquityVsIndustry string `json:"debt_to_equity_vs_industry"`
	NetMarginVsIndustry    string `json:"net_margin_vs_industry"`
	Note                   string `json:"note,omitempty"`
}

// Compare labels a value against the table's reference for the metric. A few
// percent either side of the reference reads as in line with the industry.
// Metrics with no reference stay neutral.
func (t Table) Compare(metric string, value float64) string {
	ref, ok := t.reference(metric)
	if !ok {
		return "in line with industry"
	}
	band := 0.05 * ref
	if band < 0 {
		band = -band
	}
	switch {
	case value > ref+band:
		return "above industry average"
	case value < ref-band:
		return "below industry average"
	default:
		return "in line with industry"
	}
}

// CompareInverted labels metrics where lower is better, such as leverage.
// These use quality terms rather than directions: a debt load sitting above
// the reference must never read as "below industry average".
func (t Table) CompareInverted(metric string, value float64) string {
	switch t.Compare(metric, value) {
	case "above industry average":
		return "worse than industry"
	case "below industry average":
		return "better than industry"
	default:
		return "in line with industry"
	}
}

func (t Table) reference(metric string) (float64, bool) {
	if t != nil {
		if ref, ok := t[metric]; ok {
			return ref, true
		}
	}
	ref, ok := defaultTable[metric]
	return ref, ok
}
