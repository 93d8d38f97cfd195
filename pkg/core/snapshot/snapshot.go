// Package snapshot defines the normalized input record for one analysis
// pass: every line item of the three financial statements plus optional
// market and prior-period data. Absent fields are zero; a Snapshot is never
// partially defined and is never mutated by the computation layer.
package snapshot

// Snapshot is a flat record of financial-statement line items for a single
// company and period. Field names match the upstream extractor's JSON keys.
type Snapshot struct {
	// CURRENT ASSETS
	CurrentAssets        float64 `json:"current_assets"`
	Cash                 float64 `json:"cash"`
	MarketableSecurities float64 `json:"marketable_securities"`
	AccountsReceivable   float64 `json:"accounts_receivable"`
	Inventory            float64 `json:"inventory"`
	PrepaidExpenses      float64 `json:"prepaid_expenses"`
	OtherCurrentAssets   float64 `json:"other_current_assets"`

	// NON-CURRENT ASSETS
	NonCurrentAssets        float64 `json:"non_current_assets"`
	PropertyPlantEquipment  float64 `json:"property_plant_equipment"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"`
	IntangibleAssets        float64 `json:"intangible_assets"`
	Goodwill                float64 `json:"goodwill"`
	LongTermInvestments     float64 `json:"long_term_investments"`
	DeferredTaxAssets       float64 `json:"deferred_tax_assets"`
	OtherNonCurrentAssets   float64 `json:"other_non_current_assets"`

	TotalAssets float64 `json:"total_assets"`

	// CURRENT LIABILITIES
	CurrentLiabilities         float64 `json:"current_liabilities"`
	AccountsPayable            float64 `json:"accounts_payable"`
	ShortTermDebt              float64 `json:"short_term_debt"`
	CurrentPortionLongTermDebt float64 `json:"current_portion_long_term_debt"`
	AccruedLiabilities         float64 `json:"accrued_liabilities"`
	DeferredRevenue            float64 `json:"deferred_revenue"`
	OtherCurrentLiabilities    float64 `json:"other_current_liabilities"`

	// NON-CURRENT LIABILITIES
	NonCurrentLiabilities      float64 `json:"non_current_liabilities"`
	LongTermDebt               float64 `json:"long_term_debt"`
	DeferredTaxLiabilities     float64 `json:"deferred_tax_liabilities"`
	PensionLiabilities         float64 `json:"pension_liabilities"`
	OtherNonCurrentLiabilities float64 `json:"other_non_current_liabilities"`

	TotalLiabilities float64 `json:"total_liabilities"`

	// EQUITY
	ShareholdersEquity      float64 `json:"shareholders_equity"`
	CommonStock             float64 `json:"common_stock"`
	PreferredStock          float64 `json:"preferred_stock"`
	AdditionalPaidInCapital float64 `json:"additional_paid_in_capital"`
	RetainedEarnings        float64 `json:"retained_earnings"`
	TreasuryStock           float64 `json:"treasury_stock"`
	AccumulatedOCI          float64 `json:"accumulated_other_comprehensive_income"`
	MinorityInterest        float64 `json:"minority_interest"`

	// INCOME STATEMENT
	Revenue       float64 `json:"revenue"`
	CostOfRevenue float64 `json:"cost_of_revenue"`
	GrossProfit   float64 `json:"gross_profit"`

	OperatingExpenses            float64 `json:"operating_expenses"`
	SellingGeneralAdministrative float64 `json:"selling_general_administrative"`
	ResearchDevelopment          float64 `json:"research_development"`
	DepreciationAmortization     float64 `json:"depreciation_amortization"`

	OperatingIncome    float64 `json:"operating_income"`
	InterestExpense    float64 `json:"interest_expense"`
	OtherIncomeExpense float64 `json:"other_income_expense"`
	IncomeBeforeTax    float64 `json:"income_before_tax"`
	IncomeTax          float64 `json:"income_tax"`
	NetIncome          float64 `json:"net_income"`

	EarningsPerShare float64 `json:"earnings_per_share"`
	DilutedEPS       float64 `json:"diluted_eps"`
	Shares           float64 `json:"shares"`
	DilutedShares    float64 `json:"diluted_shares"`

	// CASH FLOW STATEMENT
	OperatingCashFlow   float64 `json:"operating_cash_flow"`
	InvestingCashFlow   float64 `json:"investing_cash_flow"`
	FinancingCashFlow   float64 `json:"financing_cash_flow"`
	CapitalExpenditures float64 `json:"capital_expenditures"`
	FreeCashFlow        float64 `json:"free_cash_flow"`
	DividendsPaid       float64 `json:"dividends_paid"`
	StockRepurchased    float64 `json:"stock_repurchased"`
	DebtRepayment       float64 `json:"debt_repayment"`

	// MARKET DATA (optional)
	MarketCap         float64 `json:"market_cap"`
	StockPrice        float64 `json:"stock_price"`
	BookValuePerShare float64 `json:"book_value_per_share"`
	TangibleBookValue float64 `json:"tangible_book_value"`

	// Prior is the previous-period record used only by growth metrics.
	// nil is a valid state: growth metrics then report zero with a
	// "no comparison data" note rather than an error.
	Prior *PriorPeriod `json:"previous_year_data,omitempty"`
}

// PriorPeriod carries the reduced field set needed for horizontal
// (year-over-year) analysis.
type PriorPeriod struct {
	Revenue            float64 `json:"revenue"`
	TotalAssets        float64 `json:"total_assets"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	NetIncome          float64 `json:"net_income"`
	DividendsPaid      float64 `json:"dividends_paid"`
}

// WorkingCapital is current assets minus current liabilities. Subtraction
// cannot divide by zero, so the value bypasses the safety layer.
func (s *Snapshot) WorkingCapital() float64 {
	return s.CurrentAssets - s.CurrentLiabilities
}

// TotalDebt sums the interest-bearing liabilities.
func (s *Snapshot) TotalDebt() float64 {
	return s.ShortTermDebt + s.CurrentPortionLongTermDebt + s.LongTermDebt
}

// EBITDA approximates earnings before interest, taxes, depreciation and
// amortization as operating income plus D&A.
func (s *Snapshot) EBITDA() float64 {
	return s.OperatingIncome + s.DepreciationAmortization
}

// NetFixedAssets is gross PP&E less accumulated depreciation.
func (s *Snapshot) NetFixedAssets() float64 {
	return s.PropertyPlantEquipment - s.AccumulatedDepreciation
}

// EnterpriseValue is market capitalization plus total liabilities less cash.
func (s *Snapshot) EnterpriseValue() float64 {
	return s.MarketCap + s.TotalLiabilities - s.Cash
}

// MarketValueOfEquity prefers reported market cap, then price times shares,
// then falls back to book equity so that market-sensitive models (Altman Z)
// still produce a score for unlisted companies.
func (s *Snapshot) MarketValueOfEquity() float64 {
	if s.MarketCap != 0 {
		return s.MarketCap
	}
	if mve := s.StockPrice * s.Shares; mve != 0 {
		return mve
	}
	return s.ShareholdersEquity
}

// EffectiveTaxRate derives the tax rate from the statements, clamped to
// [0, 1]. When pre-tax income is not positive the rate is not meaningful and
// the caller-supplied fallback is used instead.
func (s *Snapshot) EffectiveTaxRate(fallback float64) float64 {
	if s.IncomeBeforeTax <= 0 {
		return fallback
	}
	rate := s.IncomeTax / s.IncomeBeforeTax
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}
