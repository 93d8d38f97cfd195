package engine

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finratio/pkg/core/benchmark"
	"finratio/pkg/core/snapshot"
)

func healthyCompany() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		CurrentAssets:       5200000,
		Cash:                1200000,
		AccountsReceivable:  1800000,
		Inventory:           1400000,
		TotalAssets:         12500000,
		CurrentLiabilities:  2200000,
		TotalLiabilities:    5000000,
		ShareholdersEquity:  7500000,
		RetainedEarnings:    4000000,
		Revenue:             12000000,
		CostOfRevenue:       6800000,
		GrossProfit:         5200000,
		OperatingExpenses:   2800000,
		OperatingIncome:     2400000,
		InterestExpense:     150000,
		IncomeBeforeTax:     2250000,
		IncomeTax:           600000,
		NetIncome:           1650000,
		OperatingCashFlow:   2200000,
		CapitalExpenditures: 500000,
		FreeCashFlow:        1700000,
		DividendsPaid:       330000,
		MarketCap:           20000000,
	}
}

func distressedCompany() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		CurrentAssets:      500000,
		Cash:               50000,
		TotalAssets:        3000000,
		CurrentLiabilities: 2000000,
		TotalLiabilities:   2800000,
		ShareholdersEquity: 200000,
		RetainedEarnings:   -500000,
		Revenue:            1000000,
		CostOfRevenue:      900000,
		OperatingIncome:    -300000,
		NetIncome:          -400000,
	}
}

func TestAnalyzeHealthyCompany(t *testing.T) {
	report := Analyze(healthyCompany(), DefaultParams())

	if math.Abs(report.Liquidity.CurrentRatio-2.36) > 0.01 {
		t.Errorf("current ratio = %v, want 2.36", report.Liquidity.CurrentRatio)
	}
	if math.Abs(report.Profitability.ReturnOnEquity-22.0) > 0.01 {
		t.Errorf("roe = %v, want 22.0", report.Profitability.ReturnOnEquity)
	}
	if math.Abs(report.Profitability.NetProfitMargin-13.75) > 0.01 {
		t.Errorf("net margin = %v, want 13.75", report.Profitability.NetProfitMargin)
	}
	if report.Advanced.AltmanZScore.Interpretation != "safe zone" {
		t.Errorf("z band = %q, want safe zone", report.Advanced.AltmanZScore.Interpretation)
	}
	if report.Summary.Grades.CurrentRatio.Label != "excellent" {
		t.Errorf("current ratio grade = %q", report.Summary.Grades.CurrentRatio.Label)
	}
	if report.Summary.Grades.ReturnOnEquity.Label != "excellent" {
		t.Errorf("roe grade = %q", report.Summary.Grades.ReturnOnEquity.Label)
	}
	if report.Summary.HealthStatus != "excellent" {
		t.Errorf("health status = %q", report.Summary.HealthStatus)
	}
	if !report.Advanced.BalanceIntegrity.IsBalanced {
		t.Errorf("balanced snapshot reported gap %v", report.Advanced.BalanceIntegrity.BalanceGap)
	}
}

func TestAnalyzeDistressedCompany(t *testing.T) {
	report := Analyze(distressedCompany(), DefaultParams())

	if report.Advanced.AltmanZScore.Interpretation != "distress zone" {
		t.Errorf("z band = %q, want distress zone", report.Advanced.AltmanZScore.Interpretation)
	}
	if report.Summary.Grades.CurrentRatio.Label != "poor" {
		t.Errorf("current ratio grade = %q, want poor", report.Summary.Grades.CurrentRatio.Label)
	}
	if report.Summary.InvestmentGrade.Letter != "D" {
		t.Errorf("investment grade = %q, want D", report.Summary.InvestmentGrade.Letter)
	}
	if len(report.Summary.MainWeaknesses) == 0 {
		t.Error("no weaknesses identified")
	}
	if len(report.Summary.MainWeaknesses) > 3 {
		t.Errorf("weaknesses list = %v, want at most three", report.Summary.MainWeaknesses)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	params := DefaultParams()

	first, err := json.Marshal(Analyze(healthyCompany(), params))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Analyze(healthyCompany(), params))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs over the same snapshot produced different reports")
	}
}

func TestAnalyzeZeroSnapshotKeySet(t *testing.T) {
	data, err := json.Marshal(Analyze(&snapshot.Snapshot{}, DefaultParams()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "NaN") || strings.Contains(string(data), "Inf") {
		t.Fatal("report contains non-finite values")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"company_info",
		"liquidity_ratios",
		"activity_ratios",
		"profitability_ratios",
		"leverage_ratios",
		"market_ratios",
		"advanced_analyses",
		"summary",
	} {
		if _, ok := top[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
}

func TestAnalyzeWithBenchmarks(t *testing.T) {
	table := benchmark.Table{"roe": 30.0}
	report := AnalyzeWithBenchmarks(healthyCompany(), DefaultParams(), table)

	// 22% ROE sits below the sector's 30% reference
	if got := report.Advanced.SectorAnalysis.ROEVsIndustry; got != "below industry average" {
		t.Errorf("roe vs industry = %q", got)
	}
	if report.Advanced.SectorAnalysis.Note != "" {
		t.Errorf("unexpected note %q", report.Advanced.SectorAnalysis.Note)
	}

	builtin := Analyze(healthyCompany(), DefaultParams())
	if builtin.Advanced.SectorAnalysis.Note == "" {
		t.Error("built-in references should be noted")
	}
	if got := builtin.Advanced.SectorAnalysis.ROEVsIndustry; got != "above industry average" {
		t.Errorf("roe vs built-in reference = %q", got)
	}
	// healthy leverage of 0.67 against the 1.0 reference is a good position
	if got := builtin.Advanced.SectorAnalysis.DebtToEquityVsIndustry; got != "better than industry" {
		t.Errorf("debt/equity vs industry = %q", got)
	}
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.hjson")
	content := "{\n  # sector-specific discount rate\n  wacc: 0.08\n  fixed_cost_share: 0.5\n}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.WACC != 0.08 || p.FixedCostShare != 0.5 {
		t.Errorf("loaded %+v", p)
	}
	// untouched fields keep their defaults
	if p.FallbackTaxRate != 0.25 {
		t.Errorf("fallback tax rate = %v, want 0.25", p.FallbackTaxRate)
	}
}

func TestParamsFromEnv(t *testing.T) {
	t.Setenv("ANALYSIS_WACC", "0.12")
	t.Setenv("ANALYSIS_FIXED_COST_SHARE", "not-a-number")

	p := DefaultParams().FromEnv()
	if p.WACC != 0.12 {
		t.Errorf("wacc = %v, want 0.12", p.WACC)
	}
	if p.FixedCostShare != 0.40 {
		t.Errorf("fixed cost share = %v, want default 0.40", p.FixedCostShare)
	}
}
