package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// EVA is economic value added: the operating profit left after charging the
// capital providers their required return.
type EVA struct {
	EconomicValueAdded float64 `json:"economic_value_added"`
	InvestedCapital    float64 `json:"invested_capital"`
	NOPAT              float64 `json:"nopat"`
	ValueCreationRate  float64 `json:"value_creation_rate"`
}

// ComputeEVA evaluates NOPAT - WACC x invested capital. The weighted average
// cost of capital is caller-supplied; fallbackTaxRate is used when the
// statements do not yield a meaningful effective rate.
func ComputeEVA(s *snapshot.Snapshot, wacc, fallbackTaxRate float64) EVA {
	taxRate := s.EffectiveTaxRate(fallbackTaxRate)
	nopat := s.OperatingIncome * (1 - taxRate)
	investedCapital := s.TotalAssets - s.Cash - s.CurrentLiabilities
	eva := nopat - wacc*investedCapital

	return EVA{
		EconomicValueAdded: safemath.Round2(safemath.JSONSafe(eva)),
		InvestedCapital:    safemath.Round2(safemath.JSONSafe(investedCapital)),
		NOPAT:              safemath.Round2(safemath.JSONSafe(nopat)),
		ValueCreationRate:  safemath.Round2(safemath.JSONSafe((safemath.SafeDivide(nopat, investedCapital, 0) - wacc) * 100)),
	}
}
