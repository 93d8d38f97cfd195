// Package diagnostics builds the composite models on top of the category
// ratios: DuPont decomposition, Altman Z bankruptcy scoring, economic value
// added, break-even, sustainable growth, statement structure analysis and
// cash-flow quality. Every function is a pure transform of one Snapshot.
package diagnostics

import (
	"math"

	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// dupontTolerance is the relative divergence above which the decomposition
// is flagged as inconsistent with the directly-computed ROE.
const dupontTolerance = 0.01

// DuPont is the 3-step ROE decomposition. ROE is the product of the three
// components; Divergence records how far that product sits from the ROE
// computed directly from the statements. Inconsistency is reported, never
// raised as an error: it usually indicates upstream extraction artifacts.
type DuPont struct {
	NetProfitMargin  float64 `json:"net_profit_margin"`
	AssetTurnover    float64 `json:"asset_turnover"`
	EquityMultiplier float64 `json:"equity_multiplier"`
	ROE              float64 `json:"roe"`
	Divergence       float64 `json:"divergence"`
	Consistent       bool    `json:"consistent"`
}

// ComputeDuPont decomposes ROE into margin, turnover and leverage.
func ComputeDuPont(s *snapshot.Snapshot) DuPont {
	margin := safemath.SafeDivide(s.NetIncome, s.Revenue, 0)
	turnover := safemath.SafeDivide(s.Revenue, s.TotalAssets, 0)
	multiplier := safemath.SafeDivide(s.TotalAssets, s.ShareholdersEquity, 0)

	roe := margin * turnover * multiplier * 100
	directROE := safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100

	divergence := math.Abs(roe - directROE)
	relative := divergence
	if directROE != 0 {
		relative = divergence / math.Abs(directROE)
	}

	return DuPont{
		NetProfitMargin:  safemath.Round2(safemath.JSONSafe(margin * 100)),
		AssetTurnover:    safemath.Round2(safemath.JSONSafe(turnover)),
		EquityMultiplier: safemath.Round2(safemath.JSONSafe(multiplier)),
		ROE:              safemath.Round2(safemath.JSONSafe(roe)),
		Divergence:       safemath.Round2(safemath.JSONSafe(divergence)),
		Consistent:       relative <= dupontTolerance,
	}
}
