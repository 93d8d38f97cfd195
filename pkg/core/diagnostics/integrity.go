package diagnostics

import (
	"fmt"
	"math"

	"finratio/pkg/core/snapshot"
)

// IntegrityResult holds the status of accounting identity checks.
type IntegrityResult struct {
	IsBalanced bool     `json:"is_balanced"`
	BalanceGap float64  `json:"balance_gap"`
	Warnings   []string `json:"warnings"`
}

// CheckBalanceSheet verifies Assets = Liabilities + Equity on the snapshot.
// A relative tolerance is used so large filings with rounding noise pass.
func CheckBalanceSheet(s *snapshot.Snapshot) IntegrityResult {
	gap := s.TotalAssets - (s.TotalLiabilities + s.ShareholdersEquity)

	tolerance := 0.01
	if scale := math.Abs(s.TotalAssets); scale > 1 {
		tolerance = scale * 1e-4
	}
	isBalanced := math.Abs(gap) <= tolerance

	warnings := []string{}
	if !isBalanced {
		warnings = append(warnings, fmt.Sprintf("balance sheet out of balance by %.2f", gap))
	}

	return IntegrityResult{
		IsBalanced: isBalanced,
		BalanceGap: gap,
		Warnings:   warnings,
	}
}
