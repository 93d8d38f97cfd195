// Package engine assembles the full analysis report: the five ratio
// categories, the composite diagnostics and the scored summary, in one
// deterministic pass over a snapshot.
package engine

import (
	"finratio/pkg/core/benchmark"
	"finratio/pkg/core/diagnostics"
	"finratio/pkg/core/ratios"
	"finratio/pkg/core/scoring"
)

// Report is the complete analysis output. The key set is fixed: every group
// and metric is present for every input, including the all-zero snapshot.
type Report struct {
	CompanyInfo   CompanyInfo          `json:"company_info"`
	Liquidity     ratios.Liquidity     `json:"liquidity_ratios"`
	Activity      ratios.Activity      `json:"activity_ratios"`
	Profitability ratios.Profitability `json:"profitability_ratios"`
	Leverage      ratios.Leverage      `json:"leverage_ratios"`
	Market        ratios.Market        `json:"market_ratios"`
	Advanced      Advanced             `json:"advanced_analyses"`
	Summary       Summary              `json:"summary"`
}

// CompanyInfo echoes the headline statement figures the analysis ran on.
type CompanyInfo struct {
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	Revenue            float64 `json:"revenue"`
	NetIncome          float64 `json:"net_income"`
}

// Advanced groups the composite diagnostic models.
type Advanced struct {
	Vertical         diagnostics.Vertical        `json:"vertical_analysis"`
	Horizontal       diagnostics.Horizontal      `json:"horizontal_analysis"`
	CashFlowAnalysis diagnostics.CashFlowQuality `json:"cash_flow_analysis"`
	DuPont           diagnostics.DuPont          `json:"dupont_analysis"`
	AltmanZScore     diagnostics.ZScore          `json:"altman_z_score"`
	EVAAnalysis      diagnostics.EVA             `json:"eva_analysis"`
	Breakeven        diagnostics.Breakeven       `json:"breakeven_analysis"`
	SectorAnalysis   benchmark.Comparison        `json:"sector_analysis"`
	SWOTAnalysis     diagnostics.SWOT            `json:"swot_analysis"`
	Comprehensive    CompositeMetrics            `json:"comprehensive_metrics"`
	BalanceIntegrity diagnostics.IntegrityResult `json:"balance_integrity"`
}

// CompositeMetrics carries the cross-category composites.
type CompositeMetrics struct {
	FinancialStrengthIndex  scoring.StrengthIndex         `json:"financial_strength_index"`
	SustainableGrowth       diagnostics.SustainableGrowth `json:"sustainable_growth"`
	EnterpriseValueToEBITDA float64                       `json:"enterprise_value_to_ebitda"`
	TangibleValueRatio      float64                       `json:"tangible_value_ratio"`
}

// MetricGrades holds the per-metric qualitative grades.
type MetricGrades struct {
	CurrentRatio     scoring.Grade `json:"current_ratio"`
	QuickRatio       scoring.Grade `json:"quick_ratio"`
	ReturnOnEquity   scoring.Grade `json:"return_on_equity"`
	NetMargin        scoring.Grade `json:"net_margin"`
	GrossMargin      scoring.Grade `json:"gross_margin"`
	DebtToEquity     scoring.Grade `json:"debt_to_equity"`
	InterestCoverage scoring.Grade `json:"interest_coverage"`
	AssetTurnover    scoring.Grade `json:"asset_turnover"`
}

// Summary is the report's executive block.
type Summary struct {
	HealthStatus    string                  `json:"health_status"`
	Grades          MetricGrades            `json:"grades"`
	MainStrengths   []string                `json:"main_strengths"`
	MainWeaknesses  []string                `json:"main_weaknesses"`
	InvestmentGrade scoring.InvestmentGrade `json:"investment_grade"`
}
