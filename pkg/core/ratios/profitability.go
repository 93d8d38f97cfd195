package ratios

import (
	"math"

	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Profitability expresses income measures against revenue and capital
// bases. Margins and returns are percentages.
type Profitability struct {
	GrossProfitMargin              float64 `json:"gross_profit_margin"`
	OperatingProfitMargin          float64 `json:"operating_profit_margin"`
	NetProfitMargin                float64 `json:"net_profit_margin"`
	ReturnOnAssets                 float64 `json:"return_on_assets"`
	ReturnOnEquity                 float64 `json:"return_on_equity"`
	ReturnOnInvestedCapital        float64 `json:"return_on_invested_capital"`
	ReturnOnCapitalEmployed        float64 `json:"return_on_capital_employed"`
	EBITDAMargin                   float64 `json:"ebitda_margin"`
	OperatingCashFlowMargin        float64 `json:"operating_cash_flow_margin"`
	FreeCashFlowMargin             float64 `json:"free_cash_flow_margin"`
	ReturnOnTangibleAssets         float64 `json:"return_on_tangible_assets"`
	EarningsGrowthRate             float64 `json:"earnings_growth_rate"`
	CostToIncomeRatio              float64 `json:"cost_to_income_ratio"`
	ReturnOnSales                  float64 `json:"return_on_sales"`
	ContributionMargin             float64 `json:"contribution_margin"`
	OperatingEfficiency            float64 `json:"operating_efficiency"`
	BasicEarningPower              float64 `json:"basic_earning_power"`
	EBITMargin                     float64 `json:"ebit_margin"`
	ReturnOnOperatingAssets        float64 `json:"return_on_operating_assets"`
	ComprehensiveProfitabilityRate float64 `json:"comprehensive_profitability_rate"`
}

// ComputeProfitability evaluates all profitability formulas.
// variableCostShare is the assumed variable fraction of cost of revenue used
// by the contribution-margin estimate; it is a business-policy constant
// supplied by the caller, not derivable from the statements.
func ComputeProfitability(s *snapshot.Snapshot, variableCostShare float64) Profitability {
	rev := s.Revenue

	// NOPAT for ROIC uses the statement-implied tax rate, clamped like
	// the EVA analysis. Loss years carry no meaningful rate and take
	// operating income untaxed.
	var roic float64
	if s.IncomeBeforeTax != 0 {
		nopat := s.OperatingIncome * (1 - s.EffectiveTaxRate(0))
		investedCapital := s.TotalAssets - s.Cash - s.CurrentLiabilities
		roic = safemath.SafeDivide(nopat, investedCapital, 0) * 100
	}

	tangibleAssets := s.TotalAssets - s.IntangibleAssets - s.Goodwill
	operatingAssets := s.TotalAssets - s.Cash - s.MarketableSecurities
	variableCosts := s.CostOfRevenue * variableCostShare

	return Profitability{
		GrossProfitMargin:              r2(safemath.SafeDivide(s.GrossProfit, rev, 0) * 100),
		OperatingProfitMargin:          r2(safemath.SafeDivide(s.OperatingIncome, rev, 0) * 100),
		NetProfitMargin:                r2(safemath.SafeDivide(s.NetIncome, rev, 0) * 100),
		ReturnOnAssets:                 r2(safemath.SafeDivide(s.NetIncome, s.TotalAssets, 0) * 100),
		ReturnOnEquity:                 r2(safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100),
		ReturnOnInvestedCapital:        r2(roic),
		ReturnOnCapitalEmployed:        r2(safemath.SafeDivide(s.OperatingIncome, s.TotalAssets-s.CurrentLiabilities, 0) * 100),
		EBITDAMargin:                   r2(safemath.SafeDivide(s.EBITDA(), rev, 0) * 100),
		OperatingCashFlowMargin:        r2(safemath.SafeDivide(s.OperatingCashFlow, rev, 0) * 100),
		FreeCashFlowMargin:             r2(safemath.SafeDivide(s.FreeCashFlow, rev, 0) * 100),
		ReturnOnTangibleAssets:         r2(safemath.SafeDivide(s.NetIncome, tangibleAssets, 0) * 100),
		EarningsGrowthRate:             r2(earningsGrowth(s)),
		CostToIncomeRatio:              r2(safemath.SafeDivide(s.OperatingExpenses, s.OperatingIncome, 0) * 100),
		ReturnOnSales:                  r2(safemath.SafeDivide(s.OperatingIncome, rev, 0) * 100),
		ContributionMargin:             r2(safemath.SafeDivide(rev-variableCosts, rev, 0) * 100),
		OperatingEfficiency:            r2(safemath.SafeDivide(s.GrossProfit, s.OperatingExpenses, 0) * 100),
		BasicEarningPower:              r2(safemath.SafeDivide(s.OperatingIncome, s.TotalAssets, 0) * 100),
		EBITMargin:                     r2(safemath.SafeDivide(s.IncomeBeforeTax+s.InterestExpense, rev, 0) * 100),
		ReturnOnOperatingAssets:        r2(safemath.SafeDivide(s.OperatingIncome, operatingAssets, 0) * 100),
		ComprehensiveProfitabilityRate: r2(safemath.SafeDivide(s.NetIncome+s.AccumulatedOCI, rev, 0) * 100),
	}
}

// earningsGrowth is the year-over-year net income change in percent. Without
// prior-period data it reports zero; the report's horizontal analysis carries
// the explicit "no comparison data" note.
func earningsGrowth(s *snapshot.Snapshot) float64 {
	if s.Prior == nil || s.Prior.NetIncome == 0 {
		return 0
	}
	return (s.NetIncome - s.Prior.NetIncome) / math.Abs(s.Prior.NetIncome) * 100
}
