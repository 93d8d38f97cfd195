package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// CashFlowQuality relates reported earnings to the cash actually generated.
type CashFlowQuality struct {
	FreeCashFlowRatio  float64 `json:"free_cash_flow_ratio"`
	EarningsQuality    float64 `json:"earnings_quality_ratio"`
	CashConversionRate float64 `json:"cash_conversion_rate"`
	CapexToRevenue     float64 `json:"capex_to_revenue_ratio"`
}

// ComputeCashFlowQuality evaluates the cash-flow quality metrics. An
// earnings-quality ratio well below one flags accrual-heavy earnings.
func ComputeCashFlowQuality(s *snapshot.Snapshot) CashFlowQuality {
	return CashFlowQuality{
		FreeCashFlowRatio:  safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(s.FreeCashFlow, s.Revenue, 0))),
		EarningsQuality:    safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(s.OperatingCashFlow, s.NetIncome, 0))),
		CashConversionRate: safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(s.OperatingCashFlow, s.OperatingIncome, 0))),
		CapexToRevenue:     safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(s.CapitalExpenditures, s.Revenue, 0) * 100)),
	}
}
