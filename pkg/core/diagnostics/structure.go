package diagnostics

import (
	"math"

	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// noComparisonNote marks horizontal analysis results computed without a
// prior-period record.
const noComparisonNote = "no comparison data available for the prior period"

// Vertical is the common-size view: every position as a percentage of its
// statement base (total assets for the balance sheet, revenue for the income
// statement).
type Vertical struct {
	AssetsStructure struct {
		CurrentAssetsPercent    float64 `json:"current_assets_percent"`
		FixedAssetsPercent      float64 `json:"fixed_assets_percent"`
		IntangibleAssetsPercent float64 `json:"intangible_assets_percent"`
	} `json:"assets_structure"`
	LiabilitiesStructure struct {
		CurrentLiabilitiesPercent float64 `json:"current_liabilities_percent"`
		LongTermDebtPercent       float64 `json:"long_term_debt_percent"`
		EquityPercent             float64 `json:"equity_percent"`
	} `json:"liabilities_structure"`
	IncomeStructure struct {
		CostOfRevenuePercent     float64 `json:"cost_of_revenue_percent"`
		OperatingExpensesPercent float64 `json:"operating_expenses_percent"`
		NetIncomePercent         float64 `json:"net_income_percent"`
	} `json:"income_structure"`
}

// ComputeVertical produces the common-size statement breakdown.
func ComputeVertical(s *snapshot.Snapshot) Vertical {
	pctOfAssets := func(v float64) float64 {
		return safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(v, s.TotalAssets, 0) * 100))
	}
	pctOfRevenue := func(v float64) float64 {
		return safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(v, s.Revenue, 0) * 100))
	}

	var out Vertical
	out.AssetsStructure.CurrentAssetsPercent = pctOfAssets(s.CurrentAssets)
	out.AssetsStructure.FixedAssetsPercent = pctOfAssets(s.PropertyPlantEquipment)
	out.AssetsStructure.IntangibleAssetsPercent = pctOfAssets(s.IntangibleAssets)
	out.LiabilitiesStructure.CurrentLiabilitiesPercent = pctOfAssets(s.CurrentLiabilities)
	out.LiabilitiesStructure.LongTermDebtPercent = pctOfAssets(s.LongTermDebt)
	out.LiabilitiesStructure.EquityPercent = pctOfAssets(s.ShareholdersEquity)
	out.IncomeStructure.CostOfRevenuePercent = pctOfRevenue(s.CostOfRevenue)
	out.IncomeStructure.OperatingExpensesPercent = pctOfRevenue(s.OperatingExpenses)
	out.IncomeStructure.NetIncomePercent = pctOfRevenue(s.NetIncome)
	return out
}

// Horizontal is the year-over-year growth view. When no prior-period record
// exists every rate is zero and Note says so; absence of comparison data is
// a valid state, not an error.
type Horizontal struct {
	RevenueGrowth   float64 `json:"revenue_growth"`
	AssetsGrowth    float64 `json:"assets_growth"`
	EquityGrowth    float64 `json:"equity_growth"`
	NetIncomeGrowth float64 `json:"net_income_growth"`
	Note            string  `json:"note,omitempty"`
}

// ComputeHorizontal produces year-over-year growth rates in percent.
func ComputeHorizontal(s *snapshot.Snapshot) Horizontal {
	if s.Prior == nil {
		return Horizontal{Note: noComparisonNote}
	}
	// Divide by the magnitude of the base so recovery from a loss still
	// reads as positive growth.
	growth := func(current, prior float64) float64 {
		return safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(current-prior, math.Abs(prior), 0) * 100))
	}
	return Horizontal{
		RevenueGrowth:   growth(s.Revenue, s.Prior.Revenue),
		AssetsGrowth:    growth(s.TotalAssets, s.Prior.TotalAssets),
		EquityGrowth:    growth(s.ShareholdersEquity, s.Prior.ShareholdersEquity),
		NetIncomeGrowth: growth(s.NetIncome, s.Prior.NetIncome),
	}
}
