package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Breakeven estimates the revenue level at which the company covers its
// fixed cost base.
type Breakeven struct {
	FixedCosts              float64 `json:"fixed_costs"`
	ContributionMarginRatio float64 `json:"contribution_margin_ratio"`
	BreakevenRevenue        float64 `json:"breakeven_revenue"`
	MarginOfSafety          float64 `json:"margin_of_safety"`
}

// ComputeBreakeven performs cost-volume-profit analysis. fixedCostShare is
// the assumed fixed fraction of operating expenses; it is a business-policy
// constant supplied by the caller. Variable costs are taken as the full cost
// of revenue.
func ComputeBreakeven(s *snapshot.Snapshot, fixedCostShare float64) Breakeven {
	fixedCosts := s.OperatingExpenses * fixedCostShare
	cmr := safemath.SafeDivide(s.Revenue-s.CostOfRevenue, s.Revenue, 0)
	breakevenRevenue := safemath.SafeDivide(fixedCosts, cmr, 0)
	marginOfSafety := safemath.SafeDivide(s.Revenue-breakevenRevenue, s.Revenue, 0) * 100

	return Breakeven{
		FixedCosts:              safemath.Round2(safemath.JSONSafe(fixedCosts)),
		ContributionMarginRatio: safemath.Round2(safemath.JSONSafe(cmr * 100)),
		BreakevenRevenue:        safemath.Round2(safemath.JSONSafe(breakevenRevenue)),
		MarginOfSafety:          safemath.Round2(safemath.JSONSafe(marginOfSafety)),
	}
}
