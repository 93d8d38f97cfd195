package scoring

import (
	"math"

	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// InvestmentGrade scores five pass/fail investment criteria at 20 points
// each and letters the total.
type InvestmentGrade struct {
	Score          float64  `json:"score"`
	Letter         string   `json:"grade"`
	CriteriaMet    []string `json:"criteria_met"`
	CriteriaFailed []string `json:"criteria_failed"`
}

// ComputeInvestmentGrade evaluates the screen: ROE above 15%, current ratio
// above 1.5, debt-to-equity below 1, earnings growth above 10% and a
// positive P/E below 20. Without a prior period the growth criterion fails.
func ComputeInvestmentGrade(s *snapshot.Snapshot) InvestmentGrade {
	roe := safemath.SafeDivide(s.NetIncome, s.ShareholdersEquity, 0) * 100
	currentRatio := safemath.SafeDivide(s.CurrentAssets, s.CurrentLiabilities, 0)
	debtToEquity := safemath.SafeDivide(s.TotalLiabilities, s.ShareholdersEquity, 0)
	pe := safemath.SafeDivide(s.StockPrice, s.EarningsPerShare, 0)

	var earningsGrowth float64
	if s.Prior != nil && s.Prior.NetIncome != 0 {
		earningsGrowth = (s.NetIncome - s.Prior.NetIncome) / math.Abs(s.Prior.NetIncome) * 100
	}

	criteria := []struct {
		name string
		met  bool
	}{
		{"return on equity above 15%", roe > 15},
		{"current ratio above 1.5", currentRatio > 1.5},
		{"debt-to-equity below 1", debtToEquity < 1},
		{"earnings growth above 10%", earningsGrowth > 10},
		{"p/e ratio below 20", pe > 0 && pe < 20},
	}

	out := InvestmentGrade{
		CriteriaMet:    []string{},
		CriteriaFailed: []string{},
	}
	for _, c := range criteria {
		if c.met {
			out.Score += 20
			out.CriteriaMet = append(out.CriteriaMet, c.name)
		} else {
			out.CriteriaFailed = append(out.CriteriaFailed, c.name)
		}
	}

	switch {
	case out.Score >= 80:
		out.Letter = "A"
	case out.Score >= 60:
		out.Letter = "B"
	case out.Score >= 40:
		out.Letter = "C"
	default:
		out.Letter = "D"
	}
	return out
}
