// Package scoring turns raw ratio values into qualitative grades and
// composite indices: per-metric grades on fixed threshold scales, a 0-100
// financial strength index and a criteria-based investment grade.
package scoring

// Grade is a qualitative label with its display colour.
type Grade struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// The five-step grade ladder shared by every scale.
var (
	gradeExcellent  = Grade{Label: "excellent", Color: "#22C55E"}
	gradeVeryGood   = Grade{Label: "very good", Color: "#3B82F6"}
	gradeGood       = Grade{Label: "good", Color: "#F59E0B"}
	gradeAcceptable = Grade{Label: "acceptable", Color: "#EAB308"}
	gradePoor       = Grade{Label: "poor", Color: "#EF4444"}
)

// Scale maps a metric value to a grade via ordered thresholds. Bands are
// listed best-first; a value earns the first band whose threshold it meets.
// With LowerIsBetter the comparison flips (smaller values grade higher),
// which fits leverage-style metrics.
type Scale struct {
	Bands         []float64
	LowerIsBetter bool
}

var gradeLadder = []Grade{gradeExcellent, gradeVeryGood, gradeGood, gradeAcceptable}

// Evaluate grades a value against the scale. Values past every band grade
// poor.
func (sc Scale) Evaluate(value float64) Grade {
	for i, threshold := range sc.Bands {
		if sc.LowerIsBetter {
			if value <= threshold {
				return gradeLadder[i]
			}
		} else if value >= threshold {
			return gradeLadder[i]
		}
	}
	return gradePoor
}

// Predefined scales for the headline metrics. Thresholds are the
// conventional analyst rules of thumb.
var (
	CurrentRatioScale  = Scale{Bands: []float64{2.0, 1.5, 1.2, 1.0}}
	QuickRatioScale    = Scale{Bands: []float64{1.5, 1.0, 0.8, 0.5}}
	ROEScale           = Scale{Bands: []float64{20, 15, 10, 5}}
	NetMarginScale     = Scale{Bands: []float64{15, 10, 5, 2}}
	GrossMarginScale   = Scale{Bands: []float64{50, 40, 30, 20}}
	DebtToEquityScale  = Scale{Bands: []float64{0.3, 0.6, 1.0, 2.0}, LowerIsBetter: true}
	InterestCoverScale = Scale{Bands: []float64{8, 5, 3, 1.5}}
	AssetTurnoverScale = Scale{Bands: []float64{1.5, 1.0, 0.7, 0.4}}
)
