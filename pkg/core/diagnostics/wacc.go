package diagnostics

import "finratio/pkg/core/safemath"

// WACCInput parameters for deriving a cost of capital when the caller does
// not supply one directly to ComputeEVA.
type WACCInput struct {
	UnleveredBeta     float64
	RiskFreeRate      float64
	MarketRiskPremium float64
	PreTaxCostOfDebt  float64
	TaxRate           float64
	DebtToEquityRatio float64 // target leverage (D/E)
}

// WACCResult holds the calculated rates and weights.
type WACCResult struct {
	LeveredBeta  float64
	CostOfEquity float64
	CostOfDebt   float64 // after-tax
	WeightDebt   float64
	WeightEquity float64
	WACC         float64
}

// ComputeWACC derives the weighted average cost of capital using CAPM with
// the Hamada re-levering of beta.
func ComputeWACC(input WACCInput) WACCResult {
	// BetaL = BetaU * (1 + (1-t)*(D/E))
	leveredBeta := input.UnleveredBeta * (1 + (1-input.TaxRate)*input.DebtToEquityRatio)

	// Ke = Rf + BetaL * ERP
	ke := input.RiskFreeRate + leveredBeta*input.MarketRiskPremium

	// After-tax cost of debt
	kd := input.PreTaxCostOfDebt * (1 - input.TaxRate)

	// D/E = x implies Wd = x/(1+x), We = 1/(1+x)
	wd := safemath.SafeDivide(input.DebtToEquityRatio, 1+input.DebtToEquityRatio, 0)
	we := 1 - wd

	return WACCResult{
		LeveredBeta:  leveredBeta,
		CostOfEquity: ke,
		CostOfDebt:   kd,
		WeightDebt:   wd,
		WeightEquity: we,
		WACC:         kd*wd + ke*we,
	}
}
