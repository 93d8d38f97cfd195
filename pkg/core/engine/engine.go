package engine

import (
	"finratio/pkg/core/benchmark"
	"finratio/pkg/core/diagnostics"
	"finratio/pkg/core/ratios"
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/scoring"
	"finratio/pkg/core/snapshot"
)

// Analyze runs the full analysis with the built-in industry references.
func Analyze(s *snapshot.Snapshot, params Params) *Report {
	return AnalyzeWithBenchmarks(s, params, nil)
}

// AnalyzeWithBenchmarks runs the full analysis against a caller-supplied
// benchmark table. The report depends only on the snapshot, the params and
// the table; two calls with the same inputs produce identical output.
func AnalyzeWithBenchmarks(s *snapshot.Snapshot, params Params, table benchmark.Table) *Report {
	liquidity := ratios.ComputeLiquidity(s)
	activity := ratios.ComputeActivity(s)
	profitability := ratios.ComputeProfitability(s, params.VariableCostShare)
	leverage := ratios.ComputeLeverage(s)
	market := ratios.ComputeMarket(s)

	strength := scoring.ComputeStrengthIndex(s)
	swot := diagnostics.ComputeSWOT(s)

	return &Report{
		CompanyInfo: CompanyInfo{
			TotalAssets:        s.TotalAssets,
			TotalLiabilities:   s.TotalLiabilities,
			ShareholdersEquity: s.ShareholdersEquity,
			Revenue:            s.Revenue,
			NetIncome:          s.NetIncome,
		},
		Liquidity:     liquidity,
		Activity:      activity,
		Profitability: profitability,
		Leverage:      leverage,
		Market:        market,
		Advanced: Advanced{
			Vertical:         diagnostics.ComputeVertical(s),
			Horizontal:       diagnostics.ComputeHorizontal(s),
			CashFlowAnalysis: diagnostics.ComputeCashFlowQuality(s),
			DuPont:           diagnostics.ComputeDuPont(s),
			AltmanZScore:     diagnostics.ComputeZScore(s),
			EVAAnalysis:      diagnostics.ComputeEVA(s, params.WACC, params.FallbackTaxRate),
			Breakeven:        diagnostics.ComputeBreakeven(s, params.FixedCostShare),
			SectorAnalysis:   sectorAnalysis(table, liquidity, profitability, leverage),
			SWOTAnalysis:     swot,
			Comprehensive: CompositeMetrics{
				FinancialStrengthIndex:  strength,
				SustainableGrowth:       diagnostics.ComputeSustainableGrowth(s),
				EnterpriseValueToEBITDA: safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(s.EnterpriseValue(), s.EBITDA(), 0))),
				TangibleValueRatio:      tangibleValueRatio(s),
			},
			BalanceIntegrity: diagnostics.CheckBalanceSheet(s),
		},
		Summary: Summary{
			HealthStatus: strength.HealthStatus,
			Grades: MetricGrades{
				CurrentRatio:     scoring.CurrentRatioScale.Evaluate(liquidity.CurrentRatio),
				QuickRatio:       scoring.QuickRatioScale.Evaluate(liquidity.QuickRatio),
				ReturnOnEquity:   scoring.ROEScale.Evaluate(profitability.ReturnOnEquity),
				NetMargin:        scoring.NetMarginScale.Evaluate(profitability.NetProfitMargin),
				GrossMargin:      scoring.GrossMarginScale.Evaluate(profitability.GrossProfitMargin),
				DebtToEquity:     scoring.DebtToEquityScale.Evaluate(leverage.DebtToEquityRatio),
				InterestCoverage: scoring.InterestCoverScale.Evaluate(leverage.InterestCoverageRatio),
				AssetTurnover:    scoring.AssetTurnoverScale.Evaluate(activity.AssetTurnover),
			},
			MainStrengths:   topThree(swot.Strengths),
			MainWeaknesses:  topThree(swot.Weaknesses),
			InvestmentGrade: scoring.ComputeInvestmentGrade(s),
		},
	}
}

func sectorAnalysis(table benchmark.Table, l ratios.Liquidity, p ratios.Profitability, lev ratios.Leverage) benchmark.Comparison {
	c := benchmark.Comparison{
		ROEVsIndustry:          table.Compare("roe", p.ReturnOnEquity),
		CurrentRatioVsIndustry: table.Compare("current_ratio", l.CurrentRatio),
		DebtToEquityVsIndustry: table.CompareInverted("debt_to_equity", lev.DebtToEquityRatio),
		NetMarginVsIndustry:    table.Compare("net_margin", p.NetProfitMargin),
	}
	if table == nil {
		c.Note = "using built-in industry references"
	}
	return c
}

// tangibleValueRatio relates tangible net worth to tangible assets, in
// percent.
func tangibleValueRatio(s *snapshot.Snapshot) float64 {
	tangibleAssets := s.TotalAssets - s.IntangibleAssets - s.Goodwill
	tangibleNetWorth := s.ShareholdersEquity - s.IntangibleAssets - s.Goodwill
	return safemath.Round2(safemath.JSONSafe(safemath.SafeDivide(tangibleNetWorth, tangibleAssets, 0) * 100))
}

// topThree keeps the report's executive lists short.
func topThree(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}
