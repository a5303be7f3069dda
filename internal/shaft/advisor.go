package shaft

import (
	"math"

	"github.com/alexiusacademia/goshaft/internal/materials"
)

// Modification factors used by SuggestModifications
const (
	LoadReductionFactor         = 0.8 // suggested T, M, F = 0.8 × current
	StressConcentrationFactor   = 0.9 // suggested Kt = 0.9 × current
	SafetyFactorReductionFactor = 0.9 // suggested FoS = 0.9 × current

	// Kt of a shaft without stress raisers
	MinStressConcentration = 1.0
)

// RecommendationKind identifies a suggested design change
type RecommendationKind int

const (
	KindStrongerMaterial RecommendationKind = iota + 1
	KindNoStrongerMaterial
	KindReduceLoads
	KindReduceStressConcentration
	KindReduceSafetyFactor
)

func (k RecommendationKind) String() string {
	switch k {
	case KindStrongerMaterial:
		return "Use a stronger material"
	case KindNoStrongerMaterial:
		return "No stronger materials available in the current database"
	case KindReduceLoads:
		return "Reduce applied loads"
	case KindReduceStressConcentration:
		return "Use design modifications to reduce stress concentration factor (Kt)"
	case KindReduceSafetyFactor:
		return "Reduce the desired factor of safety (FoS)"
	default:
		return "Unknown"
	}
}

// Adjustment proposes a new value for one input
type Adjustment struct {
	Parameter string
	Symbol    string
	Unit      string
	Current   float64
	Suggested float64
}

// Recommendation is one suggested design change. Materials is set only for
// KindStrongerMaterial; Adjustments for the remaining kinds except
// KindNoStrongerMaterial.
type Recommendation struct {
	Kind        RecommendationKind
	Materials   []materials.Material
	Adjustments []Adjustment
}

// SuggestModifications proposes design changes after a failed search.
// Recommendations come in a fixed order: material, loads, Kt (only when
// kt > 1.0), factor of safety. The proposed values are not re-verified.
func SuggestModifications(load LoadCase, yieldStrength, desiredFoS, kt float64) []Recommendation {
	var recs []Recommendation

	if stronger := materials.Stronger(yieldStrength); len(stronger) > 0 {
		recs = append(recs, Recommendation{Kind: KindStrongerMaterial, Materials: stronger})
	} else {
		recs = append(recs, Recommendation{Kind: KindNoStrongerMaterial})
	}

	recs = append(recs, Recommendation{
		Kind: KindReduceLoads,
		Adjustments: []Adjustment{
			{Parameter: "torque", Symbol: "T", Unit: "Nm", Current: load.Torque, Suggested: load.Torque * LoadReductionFactor},
			{Parameter: "bending moment", Symbol: "M", Unit: "Nm", Current: load.Moment, Suggested: load.Moment * LoadReductionFactor},
			{Parameter: "axial load", Symbol: "F", Unit: "N", Current: load.Axial, Suggested: load.Axial * LoadReductionFactor},
		},
	})

	if kt > MinStressConcentration {
		recs = append(recs, Recommendation{
			Kind: KindReduceStressConcentration,
			Adjustments: []Adjustment{{
				Parameter: "stress concentration factor",
				Symbol:    "Kt",
				Current:   kt,
				Suggested: math.Max(MinStressConcentration, kt*StressConcentrationFactor),
			}},
		})
	}

	recs = append(recs, Recommendation{
		Kind: KindReduceSafetyFactor,
		Adjustments: []Adjustment{{
			Parameter: "factor of safety",
			Symbol:    "FoS",
			Current:   desiredFoS,
			Suggested: desiredFoS * SafetyFactorReductionFactor,
		}},
	})

	return recs
}
