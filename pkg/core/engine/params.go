package engine

import (
	"fmt"
	"os"
	"strconv"

	hjson "github.com/hjson/hjson-go/v4"
)

// Params are the business-policy constants the formulas depend on. They are
// deliberately few; everything else is derived from the snapshot itself.
type Params struct {
	// WACC is the discount rate charged against invested capital in the
	// EVA analysis.
	WACC float64 `json:"wacc"`
	// FixedCostShare is the fraction of operating expenses treated as
	// fixed in the break-even analysis.
	FixedCostShare float64 `json:"fixed_cost_share"`
	// VariableCostShare is the fraction of cost of revenue treated as
	// variable when estimating the contribution margin ratio.
	VariableCostShare float64 `json:"variable_cost_share"`
	// FallbackTaxRate stands in when pre-tax income is non-positive and
	// no effective rate can be derived.
	FallbackTaxRate float64 `json:"fallback_tax_rate"`
}

// DefaultParams returns the conventional policy values.
func DefaultParams() Params {
	return Params{
		WACC:              0.10,
		FixedCostShare:    0.40,
		VariableCostShare: 0.70,
		FallbackTaxRate:   0.25,
	}
}

// LoadParams reads policy overrides from an HJSON file on top of the
// defaults. Fields absent from the file keep their default values.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params file: %w", err)
	}
	if err := hjson.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params file: %w", err)
	}
	return params, nil
}

// FromEnv overlays environment variables onto the params. Unset or
// malformed variables leave the current value untouched.
func (p Params) FromEnv() Params {
	p.WACC = envFloat("ANALYSIS_WACC", p.WACC)
	p.FixedCostShare = envFloat("ANALYSIS_FIXED_COST_SHARE", p.FixedCostShare)
	p.VariableCostShare = envFloat("ANALYSIS_VARIABLE_COST_SHARE", p.VariableCostShare)
	p.FallbackTaxRate = envFloat("ANALYSIS_FALLBACK_TAX_RATE", p.FallbackTaxRate)
	return p
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
