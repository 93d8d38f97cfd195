package scoring

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// StrengthIndex is the 0-100 composite health score. Four equally weighted
// components, each capped at 25 points: liquidity, profitability, leverage
// and efficiency.
type StrengthIndex struct {
	Score              float64 `json:"score"`
	LiquidityScore     float64 `json:"liquidity_score"`
	ProfitabilityScore float64 `json:"profitability_score"`
	LeverageScore      float64 `json:"leverage_score"`
	EfficiencyScore    float64 `json:"efficiency_score"`
	HealthStatus       string  `json:"health_status"`
}

// ComputeStrengthIndex builds the composite index. Component targets:
// current ratio 2.0, ROE 20%, debt-to-equity at or below 2, asset turnover
// 1.5. Meeting a target earns the component's full 25 points.
func ComputeStrengthIndex(s *snapshot.Snapshot) StrengthIndex {
	currentRatio := safemath.SafeDivide(s.CurrentAssets, s.CurrentLiabilities, 0)
	roe := safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100
	debtToEquity := safemath.SafeDivide(s.TotalLiabilities, s.ShareholdersEquity, 0)
	assetTurnover := safemath.SafeDivide(s.Revenue, s.TotalAssets, 0)

	liquidity := cap25(currentRatio / 2.0 * 25)
	profitability := cap25(roe / 20.0 * 25)

	var leverage float64
	if debtToEquity <= 2 {
		leverage = cap25((2 - debtToEquity) / 2.0 * 25)
	}

	efficiency := cap25(assetTurnover / 1.5 * 25)

	score := liquidity + profitability + leverage + efficiency

	var status string
	switch {
	case score > 75:
		status = "excellent"
	case score > 50:
		status = "good"
	case score > 25:
		status = "fair"
	default:
		status = "weak"
	}

	return StrengthIndex{
		Score:              safemath.Round2(safemath.JSONSafe(score)),
		LiquidityScore:     safemath.Round2(safemath.JSONSafe(liquidity)),
		ProfitabilityScore: safemath.Round2(safemath.JSONSafe(profitability)),
		LeverageScore:      safemath.Round2(safemath.JSONSafe(leverage)),
		EfficiencyScore:    safemath.Round2(safemath.JSONSafe(efficiency)),
		HealthStatus:       status,
	}
}

// cap25 clamps a component score to [0, 25].
func cap25(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 25 {
		return 25
	}
	return v
}
