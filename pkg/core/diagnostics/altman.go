package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Altman Z-score cut-offs (manufacturing model). The bands are part of the
// output contract and must not drift.
const (
	zSafeCutoff     = 2.99
	zDistressCutoff = 1.81
)

// ZScore holds the bankruptcy-risk score, its five weighted components and
// the band classification.
type ZScore struct {
	ZScore                    float64 `json:"z_score"`
	WorkingCapitalToAssets    float64 `json:"working_capital_to_assets"`
	RetainedEarningsToAssets  float64 `json:"retained_earnings_to_assets"`
	EBITToAssets              float64 `json:"ebit_to_assets"`
	MarketEquityToLiabilities float64 `json:"market_equity_to_liabilities"`
	SalesToAssets             float64 `json:"sales_to_assets"`
	Interpretation            string  `json:"interpretation"`
	BankruptcyRisk            string  `json:"bankruptcy_risk"`
}

// ComputeZScore evaluates the Altman manufacturing model:
// Z = 1.2A + 1.4B + 3.3C + 0.6D + 1.0E. Market value of equity falls back to
// book equity for unlisted companies.
func ComputeZScore(s *snapshot.Snapshot) ZScore {
	a := safemath.SafeDivide(s.WorkingCapital(), s.TotalAssets, 0)
	b := safemath.SafeDivide(s.RetainedEarnings, s.TotalAssets, 0)
	c := safemath.SafeDivide(s.OperatingIncome, s.TotalAssets, 0)
	d := safemath.SafeDivide(s.MarketValueOfEquity(), s.TotalLiabilities, 0)
	e := safemath.SafeDivide(s.Revenue, s.TotalAssets, 0)

	z := 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e

	var interpretation, risk string
	switch {
	case z > zSafeCutoff:
		interpretation = "safe zone"
		risk = "low"
	case z >= zDistressCutoff:
		interpretation = "grey zone"
		risk = "moderate"
	default:
		interpretation = "distress zone"
		risk = "high"
	}

	return ZScore{
		ZScore:                    safemath.Round2(safemath.JSONSafe(z)),
		WorkingCapitalToAssets:    safemath.Round2(safemath.JSONSafe(a)),
		RetainedEarningsToAssets:  safemath.Round2(safemath.JSONSafe(b)),
		EBITToAssets:              safemath.Round2(safemath.JSONSafe(c)),
		MarketEquityToLiabilities: safemath.Round2(safemath.JSONSafe(d)),
		SalesToAssets:             safemath.Round2(safemath.JSONSafe(e)),
		Interpretation:            interpretation,
		BankruptcyRisk:            risk,
	}
}
