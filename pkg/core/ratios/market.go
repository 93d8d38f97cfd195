package ratios

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Market relates the statements to market pricing. All per-share figures use
// basic shares outstanding; a zero share count resolves through the safety
// layer like any other degenerate denominator.
type Market struct {
	EarningsPerShare       float64 `json:"earnings_per_share"`
	PriceToEarningsRatio   float64 `json:"price_to_earnings_ratio"`
	PriceToBookRatio       float64 `json:"price_to_book_ratio"`
	PriceToSalesRatio      float64 `json:"price_to_sales_ratio"`
	DividendYield          float64 `json:"dividend_yield"`
	PayoutRatio            float64 `json:"payout_ratio"`
	EVToEBITDA             float64 `json:"ev_to_ebitda"`
	BookValuePerShare      float64 `json:"book_value_per_share"`
	PEGRatio               float64 `json:"peg_ratio"`
	EarningsYield          float64 `json:"earnings_yield"`
	PriceToCashFlow        float64 `json:"price_to_cash_flow"`
	EVToSales              float64 `json:"ev_to_sales"`
	DividendGrowthRate     float64 `json:"dividend_growth_rate"`
	FreeCashFlowPerShare   float64 `json:"free_cash_flow_per_share"`
	TotalShareholderReturn float64 `json:"total_shareholder_return"`
}

// ComputeMarket evaluates all market and valuation formulas.
func ComputeMarket(s *snapshot.Snapshot) Market {
	ev := s.EnterpriseValue()
	pe := safemath.SafeDivide(s.StockPrice, s.EarningsPerShare, 0)
	salesPerShare := safemath.SafeDivide(s.Revenue, s.Shares, 0)
	cashFlowPerShare := safemath.SafeDivide(s.OperatingCashFlow, s.Shares, 0)
	dividendPerShare := safemath.SafeDivide(s.DividendsPaid, s.Shares, 0)

	return Market{
		EarningsPerShare:       r2(s.EarningsPerShare),
		PriceToEarningsRatio:   r2(pe),
		PriceToBookRatio:       r2(safemath.SafeDivide(s.StockPrice, s.BookValuePerShare, 0)),
		PriceToSalesRatio:      r2(safemath.SafeDivide(s.StockPrice, salesPerShare, 0)),
		DividendYield:          r2(safemath.SafeDivide(dividendPerShare, s.StockPrice, 0) * 100),
		PayoutRatio:            r2(safemath.SafeDivide(s.DividendsPaid, s.NetIncome, 0) * 100),
		EVToEBITDA:             r2(safemath.SafeDivide(ev, s.EBITDA(), 0)),
		BookValuePerShare:      r2(safemath.SafeDivide(s.ShareholdersEquity, s.Shares, 0)),
		PEGRatio:               r2(safemath.SafeDivide(pe, earningsGrowth(s), 0)),
		EarningsYield:          r2(safemath.SafeDivide(s.EarningsPerShare, s.StockPrice, 0) * 100),
		PriceToCashFlow:        r2(safemath.SafeDivide(s.StockPrice, cashFlowPerShare, 0)),
		EVToSales:              r2(safemath.SafeDivide(ev, s.Revenue, 0)),
		DividendGrowthRate:     r2(dividendGrowth(s)),
		FreeCashFlowPerShare:   r2(safemath.SafeDivide(s.FreeCashFlow, s.Shares, 0)),
		TotalShareholderReturn: r2(safemath.SafeDivide(dividendPerShare, s.StockPrice, 0) * 100),
	}
}

func dividendGrowth(s *snapshot.Snapshot) float64 {
	if s.Prior == nil || s.Prior.DividendsPaid == 0 {
		return 0
	}
	return (s.DividendsPaid - s.Prior.DividendsPaid) / s.Prior.DividendsPaid * 100
}
