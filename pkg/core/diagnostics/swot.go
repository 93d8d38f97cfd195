package diagnostics

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// SWOT carries threshold-driven qualitative flags. Entries are appended in a
// fixed order so the full report stays byte-identical across runs.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// ComputeSWOT derives the SWOT flags from the headline ratios.
func ComputeSWOT(s *snapshot.Snapshot) SWOT {
	currentRatio := safemath.SafeDivide(s.CurrentAssets, s.CurrentLiabilities, 0)
	roe := safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100
	debtToEquity := safemath.SafeDivide(s.TotalLiabilities, s.ShareholdersEquity, 0)
	cashRatio := safemath.SafeDivide(s.Cash, s.CurrentLiabilities, 0)

	out := SWOT{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}

	if currentRatio > 2 {
		out.Strengths = append(out.Strengths, "strong liquidity position")
	}
	if roe > 20 {
		out.Strengths = append(out.Strengths, "high return on equity")
	}
	if debtToEquity < 0.5 {
		out.Strengths = append(out.Strengths, "conservative capital structure")
	}

	if currentRatio < 1 {
		out.Weaknesses = append(out.Weaknesses, "weak liquidity position")
	}
	if roe < 10 {
		out.Weaknesses = append(out.Weaknesses, "low return on equity")
	}
	if debtToEquity > 2 {
		out.Weaknesses = append(out.Weaknesses, "heavy debt load")
	}

	if cashRatio > 1 {
		out.Opportunities = append(out.Opportunities, "cash reserves available for expansion")
	} else {
		out.Opportunities = append(out.Opportunities, "room to improve operating efficiency")
	}

	if currentRatio < 0.8 {
		out.Threats = append(out.Threats, "short-term liquidity risk")
	} else {
		out.Threats = append(out.Threats, "competitive pressure")
	}

	return out
}
