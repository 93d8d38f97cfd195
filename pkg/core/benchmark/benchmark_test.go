package benchmark

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompareDefaults(t *testing.T) {
	var table Table // nil falls back to the built-in references

	tests := []struct {
		metric string
		value  float64
		want   string
	}{
		{"roe", 22.0, "above industry average"},
		{"roe", 15.2, "in line with industry"},
		{"roe", 8.0, "below industry average"},
		{"current_ratio", 2.36, "above industry average"},
		{"net_margin", 5.0, "below industry average"},
		{"unknown_metric", 100.0, "in line with industry"},
	}
	for _, tt := range tests {
		if got := table.Compare(tt.metric, tt.value); got != tt.want {
			t.Errorf("Compare(%q, %v) = %q, want %q", tt.metric, tt.value, got, tt.want)
		}
	}
}

func TestCompareInverted(t *testing.T) {
	var table Table

	// a debt-to-equity well below the 1.0 reference is a good position
	if got := table.CompareInverted("debt_to_equity", 0.5); got != "better than industry" {
		t.Errorf("CompareInverted(0.5) = %q", got)
	}
	if got := table.CompareInverted("debt_to_equity", 2.0); got != "worse than industry" {
		t.Errorf("CompareInverted(2.0) = %q", got)
	}
	if got := table.CompareInverted("debt_to_equity", 1.0); got != "in line with industry" {
		t.Errorf("CompareInverted(1.0) = %q", got)
	}
}

func TestCompareInvertedNeverDirectional(t *testing.T) {
	// Leverage above the reference must not come out as "below industry
	// average": the inverted labels are quality terms, not directions.
	table := Table{"debt_to_equity": 1.0}
	got := table.CompareInverted("debt_to_equity", 2.0)
	if got == "below industry average" || got == "above industry average" {
		t.Fatalf("CompareInverted(2.0) = %q, want a quality label", got)
	}
	if got != "worse than industry" {
		t.Errorf("CompareInverted(2.0) = %q, want %q", got, "worse than industry")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tech.yaml")
	content := "roe: 25.0\ncurrent_ratio: 1.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 22% ROE is below the sector's 25% reference
	if got := table.Compare("roe", 22.0); got != "below industry average" {
		t.Errorf("Compare(roe, 22) = %q", got)
	}
	// metrics missing from the file keep the built-in reference
	if got := table.Compare("net_margin", 13.75); got != "above industry average" {
		t.Errorf("Compare(net_margin, 13.75) = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
