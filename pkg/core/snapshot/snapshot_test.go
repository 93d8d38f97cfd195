package snapshot

import (
	"math"
	"testing"
)

func TestFromJSONDefaultsToZero(t *testing.T) {
	snap, err := FromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("empty object should decode: %v", err)
	}
	if snap.TotalAssets != 0 || snap.Revenue != 0 || snap.NetIncome != 0 {
		t.Error("unspecified fields must default to zero")
	}
	if snap.Prior != nil {
		t.Error("prior period must be nil when absent")
	}
}

func TestFromJSONRepairsAlmostJSON(t *testing.T) {
	// Trailing comma and single quotes, as produced by sloppy extractors.
	payload := `{'revenue': 12000000, 'net_income': 1650000,}`
	snap, err := FromJSON([]byte(payload))
	if err != nil {
		t.Fatalf("repairable payload rejected: %v", err)
	}
	if snap.Revenue != 12000000 {
		t.Errorf("revenue = %v, want 12000000", snap.Revenue)
	}
	if snap.NetIncome != 1650000 {
		t.Errorf("net_income = %v, want 1650000", snap.NetIncome)
	}
}

func TestFromJSONPriorPeriod(t *testing.T) {
	payload := `{"revenue": 100, "previous_year_data": {"revenue": 80, "net_income": 5}}`
	snap, err := FromJSON([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Prior == nil {
		t.Fatal("prior period not decoded")
	}
	if snap.Prior.Revenue != 80 || snap.Prior.NetIncome != 5 {
		t.Errorf("prior period fields wrong: %+v", snap.Prior)
	}
}

func TestDerivedAccessors(t *testing.T) {
	s := &Snapshot{
		CurrentAssets:            5200000,
		CurrentLiabilities:       2200000,
		Cash:                     1200000,
		ShortTermDebt:            300000,
		CurrentPortionLongTermDebt: 200000,
		LongTermDebt:             1500000,
		OperatingIncome:          2400000,
		DepreciationAmortization: 350000,
		PropertyPlantEquipment:   4000000,
		AccumulatedDepreciation:  1000000,
		MarketCap:                20000000,
		TotalLiabilities:         5000000,
	}
	if got := s.WorkingCapital(); got != 3000000 {
		t.Errorf("working capital = %v", got)
	}
	if got := s.TotalDebt(); got != 2000000 {
		t.Errorf("total debt = %v", got)
	}
	if got := s.EBITDA(); got != 2750000 {
		t.Errorf("ebitda = %v", got)
	}
	if got := s.NetFixedAssets(); got != 3000000 {
		t.Errorf("net fixed assets = %v", got)
	}
	if got := s.EnterpriseValue(); got != 23800000 {
		t.Errorf("enterprise value = %v", got)
	}
}

func TestMarketValueOfEquityFallbacks(t *testing.T) {
	s := &Snapshot{MarketCap: 500}
	if s.MarketValueOfEquity() != 500 {
		t.Error("market cap should win when present")
	}
	s = &Snapshot{StockPrice: 10, Shares: 30}
	if s.MarketValueOfEquity() != 300 {
		t.Error("price x shares fallback")
	}
	s = &Snapshot{ShareholdersEquity: 7500000}
	if s.MarketValueOfEquity() != 7500000 {
		t.Error("book equity fallback")
	}
}

func TestEffectiveTaxRate(t *testing.T) {
	s := &Snapshot{IncomeBeforeTax: 2000000, IncomeTax: 500000}
	if got := s.EffectiveTaxRate(0.25); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("tax rate = %v, want 0.25", got)
	}
	// Non-positive pre-tax income falls back.
	s = &Snapshot{IncomeBeforeTax: -100, IncomeTax: 20}
	if got := s.EffectiveTaxRate(0.3); got != 0.3 {
		t.Errorf("fallback not applied: %v", got)
	}
	// Clamped to [0, 1].
	s = &Snapshot{IncomeBeforeTax: 10, IncomeTax: 25}
	if got := s.EffectiveTaxRate(0.25); got != 1 {
		t.Errorf("rate not clamped: %v", got)
	}
}
