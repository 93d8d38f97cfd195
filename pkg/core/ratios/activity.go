package ratios

import (
	"finratio/pkg/core/safemath"
	"finratio/pkg/core/snapshot"
)

// Activity measures how efficiently assets and capital are turned into
// revenue. Every turnover ratio has a paired "days outstanding" metric
// computed as 365 over the turnover.
type Activity struct {
	InventoryTurnover         float64 `json:"inventory_turnover"`
	DaysInventoryOutstanding  float64 `json:"days_inventory_outstanding"`
	ReceivablesTurnover       float64 `json:"receivables_turnover"`
	DaysSalesOutstanding      float64 `json:"days_sales_outstanding"`
	PayablesTurnover          float64 `json:"payables_turnover"`
	DaysPayablesOutstanding   float64 `json:"days_payables_outstanding"`
	AssetTurnover             float64 `json:"asset_turnover"`
	FixedAssetTurnover        float64 `json:"fixed_asset_turnover"`
	CurrentAssetTurnover      float64 `json:"current_asset_turnover"`
	WorkingCapitalTurnover    float64 `json:"working_capital_turnover"`
	CashManagementEfficiency  float64 `json:"cash_management_efficiency"`
	AssetEfficiencyRatio      float64 `json:"asset_efficiency_ratio"`
	EquityTurnover            float64 `json:"equity_turnover"`
	AssetUtilization          float64 `json:"asset_utilization"`
	CapitalEmployedEfficiency float64 `json:"capital_employed_efficiency"`
	IntangibleAssetTurnover   float64 `json:"intangible_asset_turnover"`
	CollectionEfficiency      float64 `json:"collection_efficiency"`
	OperatingAssetTurnover    float64 `json:"operating_asset_turnover"`
}

// ComputeActivity evaluates all activity and efficiency formulas.
func ComputeActivity(s *snapshot.Snapshot) Activity {
	inventoryTurns := safemath.SafeDivide(s.CostOfRevenue, s.Inventory, 0)
	receivableTurns := safemath.SafeDivide(s.Revenue, s.AccountsReceivable, 0)
	payableTurns := safemath.SafeDivide(s.CostOfRevenue, s.AccountsPayable, 0)

	capitalEmployed := s.TotalAssets - s.CurrentLiabilities
	operatingAssets := s.TotalAssets - s.Cash - s.MarketableSecurities
	monthlyRevenue := safemath.SafeDivide(s.Revenue, 12, 1)

	return Activity{
		InventoryTurnover:         r2(inventoryTurns),
		DaysInventoryOutstanding:  r2(safemath.SafeDivide(daysPerYear, inventoryTurns, 0)),
		ReceivablesTurnover:       r2(receivableTurns),
		DaysSalesOutstanding:      r2(safemath.SafeDivide(daysPerYear, receivableTurns, 0)),
		PayablesTurnover:          r2(payableTurns),
		DaysPayablesOutstanding:   r2(safemath.SafeDivide(daysPerYear, payableTurns, 0)),
		AssetTurnover:             r2(safemath.SafeDivide(s.Revenue, s.TotalAssets, 0)),
		FixedAssetTurnover:        r2(safemath.SafeDivide(s.Revenue, s.NetFixedAssets(), 0)),
		CurrentAssetTurnover:      r2(safemath.SafeDivide(s.Revenue, s.CurrentAssets, 0)),
		WorkingCapitalTurnover:    r2(safemath.SafeDivide(s.Revenue, s.WorkingCapital(), 0)),
		CashManagementEfficiency:  r2(safemath.SafeDivide(s.OperatingCashFlow, s.Revenue, 0)),
		AssetEfficiencyRatio:      r2(safemath.SafeDivide(s.GrossProfit, s.TotalAssets, 0)),
		EquityTurnover:            r2(safemath.SafeDivide(s.Revenue, s.ShareholdersEquity, 0)),
		AssetUtilization:          r2(safemath.SafeDivide(s.OperatingIncome, s.TotalAssets, 0)),
		CapitalEmployedEfficiency: r2(safemath.SafeDivide(s.Revenue, capitalEmployed, 0)),
		IntangibleAssetTurnover:   r2(safemath.SafeDivide(s.Revenue, s.IntangibleAssets, 0)),
		CollectionEfficiency:      r2(1 - safemath.SafeDivide(s.AccountsReceivable, monthlyRevenue, 0)),
		OperatingAssetTurnover:    r2(safemath.SafeDivide(s.Revenue, operatingAssets, 0)),
	}
}
