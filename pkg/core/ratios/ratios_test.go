package ratios

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// healthySnapshot mirrors the profitable mid-size company used across the
// engine tests.
func healthySnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		CurrentAssets:      5200000,
		Cash:               1200000,
		AccountsReceivable: 1800000,
		Inventory:          1400000,
		TotalAssets:        13700000,
		CurrentLiabilities: 2200000,
		TotalLiabilities:   5000000,
		ShareholdersEquity: 7500000,
		Revenue:            12000000,
		CostOfRevenue:      6800000,
		GrossProfit:        5200000,
		OperatingExpenses:  2800000,
		OperatingIncome:    2400000,
		InterestExpense:    150000,
		IncomeBeforeTax:    2250000,
		IncomeTax:          600000,
		NetIncome:          1650000,
		OperatingCashFlow:  2200000,
	}
}

// checkFinite walks a result struct and fails on any non-finite field.
func checkFinite(t *testing.T, name string, v interface{}) {
	t.Helper()
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Field(i).Kind() != reflect.Float64 {
			continue
		}
		f := rv.Field(i).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("%s.%s is not finite: %v", name, rt.Field(i).Name, f)
		}
	}
}

func TestZeroSnapshotTotality(t *testing.T) {
	s := &snapshot.Snapshot{}

	results := map[string]interface{}{
		"liquidity":     ComputeLiquidity(s),
		"activity":      ComputeActivity(s),
		"profitability": ComputeProfitability(s, 0.7),
		"leverage":      ComputeLeverage(s),
		"market":        ComputeMarket(s),
	}
	for name, res := range results {
		checkFinite(t, name, res)
		if _, err := json.Marshal(res); err != nil {
			t.Errorf("%s result not JSON-serializable: %v", name, err)
		}
	}
}

func TestCurrentRatioIdentity(t *testing.T) {
	s := healthySnapshot()
	liq := ComputeLiquidity(s)
	want := safemath.Round2(s.CurrentAssets / s.CurrentLiabilities)
	if math.Abs(liq.CurrentRatio-want) > 1e-9 {
		t.Errorf("current ratio = %v, want %v", liq.CurrentRatio, want)
	}
	if math.Abs(liq.CurrentRatio-2.36) > 0.01 {
		t.Errorf("current ratio = %v, want about 2.36", liq.CurrentRatio)
	}
}

func TestHealthyScenario(t *testing.T) {
	s := healthySnapshot()

	prof := ComputeProfitability(s, 0.7)
	if math.Abs(prof.ReturnOnEquity-22.0) > 0.01 {
		t.Errorf("ROE = %v, want about 22.0", prof.ReturnOnEquity)
	}
	if math.Abs(prof.NetProfitMargin-13.75) > 0.01 {
		t.Errorf("net margin = %v, want about 13.75", prof.NetProfitMargin)
	}
	if math.Abs(prof.GrossProfitMargin-43.33) > 0.01 {
		t.Errorf("gross margin = %v, want about 43.33", prof.GrossProfitMargin)
	}

	lev := ComputeLeverage(s)
	if math.Abs(lev.DebtToEquityRatio-0.67) > 0.01 {
		t.Errorf("debt/equity = %v, want about 0.67", lev.DebtToEquityRatio)
	}
	if math.Abs(lev.InterestCoverageRatio-16.0) > 0.01 {
		t.Errorf("interest coverage = %v, want 16.0", lev.InterestCoverageRatio)
	}

	act := ComputeActivity(s)
	if math.Abs(act.AssetTurnover-0.88) > 0.01 {
		t.Errorf("asset turnover = %v, want about 0.88", act.AssetTurnover)
	}
	if math.Abs(act.InventoryTurnover-4.86) > 0.01 {
		t.Errorf("inventory turnover = %v, want about 4.86", act.InventoryTurnover)
	}
}

func TestSentinelOnDegenerateDenominators(t *testing.T) {
	// Debt with zero equity reads as effectively infinite leverage.
	s := &snapshot.Snapshot{TotalLiabilities: 1000000}
	lev := ComputeLeverage(s)
	if lev.DebtToEquityRatio != safemath.Sentinel {
		t.Errorf("debt/equity = %v, want sentinel", lev.DebtToEquityRatio)
	}
	// Positive operating income with zero interest expense likewise.
	s = &snapshot.Snapshot{OperatingIncome: 500}
	lev = ComputeLeverage(s)
	if lev.InterestCoverageRatio != safemath.Sentinel {
		t.Errorf("interest coverage = %v, want sentinel", lev.InterestCoverageRatio)
	}
}

func TestDaysMetricsPairTurnover(t *testing.T) {
	s := healthySnapshot()
	act := ComputeActivity(s)
	wantDIO := safemath.Round2(365 / (s.CostOfRevenue / s.Inventory))
	if math.Abs(act.DaysInventoryOutstanding-wantDIO) > 0.5 {
		t.Errorf("DIO = %v, want about %v", act.DaysInventoryOutstanding, wantDIO)
	}
}

func TestROICLossYearTaxRateClamped(t *testing.T) {
	// A loss year with positive reported tax must not inflate NOPAT above
	// operating income (the raw IncomeTax/IncomeBeforeTax quotient would).
	s := &snapshot.Snapshot{
		TotalAssets:     10000000,
		OperatingIncome: 1000000,
		IncomeBeforeTax: -100000,
		IncomeTax:       20000,
	}
	prof := ComputeProfitability(s, 0.7)
	if math.Abs(prof.ReturnOnInvestedCapital-10.0) > 0.01 {
		t.Errorf("ROIC = %v, want 10.0 with untaxed operating income", prof.ReturnOnInvestedCapital)
	}
}

func TestGrowthMetricsWithPrior(t *testing.T) {
	s := healthySnapshot()
	s.Prior = &snapshot.PriorPeriod{NetIncome: 1500000, DividendsPaid: 100000}
	s.DividendsPaid = 120000

	prof := ComputeProfitability(s, 0.7)
	if math.Abs(prof.EarningsGrowthRate-10.0) > 0.01 {
		t.Errorf("earnings growth = %v, want 10.0", prof.EarningsGrowthRate)
	}
	mkt := ComputeMarket(s)
	if math.Abs(mkt.DividendGrowthRate-20.0) > 0.01 {
		t.Errorf("dividend growth = %v, want 20.0", mkt.DividendGrowthRate)
	}

	// Without prior data both report zero, never an error.
	s.Prior = nil
	if g := ComputeProfitability(s, 0.7).EarningsGrowthRate; g != 0 {
		t.Errorf("earnings growth without prior = %v, want 0", g)
	}
}
