// Package ratios implements the five standard ratio categories over a
// Snapshot: liquidity, activity, profitability, leverage and market. Each
// category is a pure function returning a fixed-shape result struct whose
// fields are already rounded and JSON-safe; division-by-zero cases resolve
// to the safety layer's sentinel or default, never to an error.
package ratios

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// daysPerYear is the day-count convention shared by all turnover-to-days
// conversions.
const daysPerYear = 365

// r2 is the common output normalization: clamp, then round.
func r2(v float64) float64 {
	return safemath.Round2(safemath.JSONSafe(v))
}

// Liquidity measures the company's ability to cover short-term obligations.
type Liquidity struct {
	CurrentRatio           float64 `json:"current_ratio"`
	QuickRatio             float64 `json:"quick_ratio"`
	CashRatio              float64 `json:"cash_ratio"`
	AbsoluteCashRatio      float64 `json:"absolute_cash_ratio"`
	SuperQuickRatio        float64 `json:"super_quick_ratio"`
	WorkingCapital         float64 `json:"working_capital"`
	WorkingCapitalRatio    float64 `json:"working_capital_ratio"`
	OperatingCashFlowRatio float64 `json:"operating_cash_flow_ratio"`
	DefensiveIntervalRatio float64 `json:"defensive_interval_ratio"`
	CriticalLiquidityRatio float64 `json:"critical_liquidity_ratio"`
	CashConversionCycle    float64 `json:"cash_conversion_cycle"`
	LiquidAssetsRatio      float64 `json:"liquid_assets_ratio"`
	CashTurnoverRatio      float64 `json:"cash_turnover_ratio"`
	CashCoverageRatio      float64 `json:"cash_coverage_ratio"`
	ModifiedLiquidityRatio float64 `json:"modified_liquidity_ratio"`
}

// ComputeLiquidity evaluates all liquidity formulas for one snapshot.
func ComputeLiquidity(s *snapshot.Snapshot) Liquidity {
	cl := s.CurrentLiabilities
	wc := s.WorkingCapital()

	// The cash conversion cycle is a sum of three safe day-counts, so a
	// missing denominator degrades one leg to zero instead of poisoning
	// the whole metric.
	daysInventory := safemath.SafeDivide(s.Inventory*daysPerYear, s.CostOfRevenue, 0)
	daysReceivables := safemath.SafeDivide(s.AccountsReceivable*daysPerYear, s.Revenue, 0)
	daysPayables := safemath.SafeDivide(s.AccountsPayable*daysPerYear, s.CostOfRevenue, 0)

	dailyExpenses := safemath.SafeDivide(s.OperatingExpenses, daysPerYear, 1)
	liquidAssets := s.Cash + s.MarketableSecurities + s.AccountsReceivable

	return Liquidity{
		CurrentRatio:           r2(safemath.SafeDivide(s.CurrentAssets, cl, 0)),
		QuickRatio:             r2(safemath.SafeDivide(s.CurrentAssets-s.Inventory, cl, 0)),
		CashRatio:              r2(safemath.SafeDivide(s.Cash, cl, 0)),
		AbsoluteCashRatio:      r2(safemath.SafeDivide(s.Cash+s.MarketableSecurities, cl, 0)),
		SuperQuickRatio:        r2(safemath.SafeDivide(s.Cash+s.MarketableSecurities+s.AccountsReceivable*0.8, cl, 0)),
		WorkingCapital:         r2(wc),
		WorkingCapitalRatio:    r2(safemath.SafeDivide(wc, s.TotalAssets, 0)),
		OperatingCashFlowRatio: r2(safemath.SafeDivide(s.OperatingCashFlow, cl, 0)),
		DefensiveIntervalRatio: r2(safemath.SafeDivide(liquidAssets, dailyExpenses, 0)),
		CriticalLiquidityRatio: r2(safemath.SafeDivide(s.Cash+s.AccountsReceivable, cl, 0)),
		CashConversionCycle:    r2(daysInventory + daysReceivables - daysPayables),
		LiquidAssetsRatio:      r2(safemath.SafeDivide(s.Cash+s.MarketableSecurities, s.TotalAssets, 0)),
		CashTurnoverRatio:      r2(safemath.SafeDivide(s.Revenue, s.Cash, 0)),
		CashCoverageRatio:      r2(safemath.SafeDivide(s.EBITDA(), s.InterestExpense, 0)),
		ModifiedLiquidityRatio: r2(safemath.SafeDivide(s.CurrentAssets-s.Inventory-s.PrepaidExpenses, cl-s.DeferredRevenue, 0)),
	}
}
