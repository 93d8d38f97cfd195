package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// SustainableGrowth is the growth rate financeable from retained earnings
// alone: ROE x retention ratio.
type SustainableGrowth struct {
	ReturnOnEquity        float64 `json:"return_on_equity"`
	RetentionRatio        float64 `json:"retention_ratio"`
	SustainableGrowthRate float64 `json:"sustainable_growth_rate"`
}

// ComputeSustainableGrowth derives the sustainable growth rate. With
// non-positive net income there are no earnings to retain and the rate is
// zero.
func ComputeSustainableGrowth(s *snapshot.Snapshot) SustainableGrowth {
	roe := safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100

	var retention float64
	if s.NetIncome > 0 {
		retention = 1 - s.DividendsPaid/s.NetIncome
	}

	return SustainableGrowth{
		ReturnOnEquity:        safemath.Round2(safemath.JSONSafe(roe)),
		RetentionRatio:        safemath.Round2(safemath.JSONSafe(retention)),
		SustainableGrowthRate: safemath.Round2(safemath.JSONSafe(roe * retention)),
	}
}
