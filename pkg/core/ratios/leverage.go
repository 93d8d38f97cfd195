package ratios

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Leverage covers capital-structure and debt-service measures. Ratios with a
// zero denominator but positive numerator (debt against zero equity, income
// against zero interest) surface the sentinel, matching the "effectively
// infinite" reading of the underlying economics.
type Leverage struct {
	DebtToEquityRatio            float64 `json:"debt_to_equity_ratio"`
	DebtToAssetsRatio            float64 `json:"debt_to_assets_ratio"`
	EquityRatio                  float64 `json:"equity_ratio"`
	EquityMultiplier             float64 `json:"equity_multiplier"`
	InterestCoverageRatio        float64 `json:"interest_coverage_ratio"`
	DebtServiceCoverageRatio     float64 `json:"debt_service_coverage_ratio"`
	LongTermDebtToCapitalization float64 `json:"long_term_debt_to_capitalization"`
	FixedAssetsToEquity          float64 `json:"fixed_assets_to_equity"`
	ExternalFinancingRatio       float64 `json:"external_financing_ratio"`
	NetDebtToEBITDA              float64 `json:"net_debt_to_ebitda"`
	DegreeOfFinancialLeverage    float64 `json:"degree_of_financial_leverage"`
	FinancialDebtRatio           float64 `json:"financial_debt_ratio"`
	CashDebtCoverage             float64 `json:"cash_debt_coverage"`
	OperatingLeverage            float64 `json:"operating_leverage"`
	FinancialSafetyRatio         float64 `json:"financial_safety_ratio"`
}

// ComputeLeverage evaluates all leverage and solvency formulas.
func ComputeLeverage(s *snapshot.Snapshot) Leverage {
	eq := s.ShareholdersEquity
	debtService := s.InterestExpense + s.CurrentPortionLongTermDebt
	netDebt := s.TotalLiabilities - s.Cash

	return Leverage{
		DebtToEquityRatio:            r2(safemath.SafeDivide(s.TotalLiabilities, eq, 0)),
		DebtToAssetsRatio:            r2(safemath.SafeDivide(s.TotalLiabilities, s.TotalAssets, 0)),
		EquityRatio:                  r2(safemath.SafeDivide(eq, s.TotalAssets, 0)),
		EquityMultiplier:             r2(safemath.SafeDivide(s.TotalAssets, eq, 0)),
		InterestCoverageRatio:        r2(safemath.SafeDivide(s.OperatingIncome, s.InterestExpense, 0)),
		DebtServiceCoverageRatio:     r2(safemath.SafeDivide(s.EBITDA(), debtService, 0)),
		LongTermDebtToCapitalization: r2(safemath.SafeDivide(s.LongTermDebt, s.LongTermDebt+eq, 0)),
		FixedAssetsToEquity:          r2(safemath.SafeDivide(s.NetFixedAssets(), eq, 0)),
		ExternalFinancingRatio:       r2(safemath.SafeDivide(s.TotalLiabilities, s.TotalLiabilities+eq, 0)),
		NetDebtToEBITDA:              r2(safemath.SafeDivide(netDebt, s.EBITDA(), 0)),
		DegreeOfFinancialLeverage:    r2(safemath.SafeDivide(s.OperatingIncome, s.OperatingIncome-s.InterestExpense, 0)),
		FinancialDebtRatio:           r2(safemath.SafeDivide(s.ShortTermDebt+s.LongTermDebt, s.TotalAssets, 0)),
		CashDebtCoverage:             r2(safemath.SafeDivide(s.OperatingCashFlow, s.TotalLiabilities, 0)),
		OperatingLeverage:            r2(safemath.SafeDivide(s.Revenue-s.CostOfRevenue, s.OperatingIncome, 0)),
		FinancialSafetyRatio:         r2(safemath.SafeDivide(eq, s.TotalLiabilities, 0)),
	}
}
