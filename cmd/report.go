package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goshaft/internal/diagram"
	"github.com/alexiusacademia/goshaft/internal/shaft"
)

const (
	rule          = "═══════════════════════════════════════════════════════════════"
	thinRule      = "───────────────────────────────────────────────────────────────"
	pascalsPerGPa = 1e9
)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, thinRule)
}

func printInputs(w io.Writer, s *shaft.Shaft, name string) {
	if name != "" {
		fmt.Fprintf(w, "  Scenario: %s\n", name)
		fmt.Fprintln(w)
	}

	printSection(w, "INPUT DATA:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Torque (T):\t%.2f Nm\n", s.Load.Torque)
	fmt.Fprintf(tw, "  Bending Moment (M):\t%.2f Nm\n", s.Load.Moment)
	fmt.Fprintf(tw, "  Axial Load (F):\t%.2f N\n", s.Load.Axial)
	fmt.Fprintf(tw, "  Shaft Length (L):\t%.1f mm\n", s.Length)
	fmt.Fprintf(tw, "  Material:\t%s (Sy = %g MPa)\n", s.Material.Name, s.Material.YieldStrength)
	fmt.Fprintf(tw, "  Young's Modulus (E):\t%g GPa\n", s.Requirement.Modulus/pascalsPerGPa)
	fmt.Fprintf(tw, "  Stress Concentration (Kt):\t%.2f\n", s.Requirement.StressConcentration)
	fmt.Fprintf(tw, "  Desired Factor of Safety:\t%.2f\n", s.Requirement.FactorOfSafety)
	tw.Flush()
	fmt.Fprintln(w)
}

// printEvaluation prints the stress state at one diameter
func printEvaluation(w io.Writer, label string, s *shaft.Shaft, eval *shaft.Evaluation) {
	fmt.Fprintf(w, "%s: %.2f mm\n", label, eval.Diameter)
	fmt.Fprintf(w, "Von Mises Stress: %.2f MPa\n", eval.VonMises)
	fmt.Fprintf(w, "Factor of Safety: %.2f\n", eval.FactorOfSafety)
	fmt.Fprintf(w, "Deflection of Shaft: %.3f mm\n", eval.Deflection*1000)
	fmt.Fprintf(w, "Material: %s (Yield Strength: %g MPa)\n", s.Material.Name, s.Material.YieldStrength)
}

func printDesignResult(w io.Writer, s *shaft.Shaft, result *shaft.DesignResult) {
	printSection(w, "DESIGN RESULT:")

	if !result.Found {
		fmt.Fprintln(w, diagram.DrawSummaryBox("NO VALID DIAMETER FOUND", []string{
			fmt.Sprintf("Scanned %d diameters, %.1f to %.1f mm", result.Candidates, s.Range.Min, s.Range.Max),
		}))
		printRecommendations(w, result.Recommendations)
		return
	}

	eval := result.Evaluation
	fmt.Fprintln(w, diagram.DrawSummaryBox("MINIMUM DIAMETER", []string{
		fmt.Sprintf("d = %.2f mm", eval.Diameter),
	}))
	printEvaluation(w, "Minimum Shaft Diameter", s, eval)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  FoS = %.2f ≥ %.2f required ✓\n", eval.FactorOfSafety, s.Requirement.FactorOfSafety)
	fmt.Fprintln(w)
}

// Each recommendation keeps its fixed number even when an earlier one is
// omitted
var recommendationNumber = map[shaft.RecommendationKind]int{
	shaft.KindStrongerMaterial:          1,
	shaft.KindNoStrongerMaterial:        1,
	shaft.KindReduceLoads:               2,
	shaft.KindReduceStressConcentration: 3,
	shaft.KindReduceSafetyFactor:        4,
}

func percent(factor float64) float64 {
	return (1 - factor) * 100
}

func printRecommendations(w io.Writer, recs []shaft.Recommendation) {
	fmt.Fprintln(w, "No valid diameter found.")
	fmt.Fprintln(w, "Suggested modifications to improve the design:")

	for _, rec := range recs {
		fmt.Fprintln(w)
		n := recommendationNumber[rec.Kind]

		switch rec.Kind {
		case shaft.KindNoStrongerMaterial:
			fmt.Fprintf(w, "%d. %s.\n", n, rec.Kind)
		case shaft.KindStrongerMaterial:
			fmt.Fprintf(w, "%d. %s:\n", n, rec.Kind)
			for _, m := range rec.Materials {
				fmt.Fprintf(w, "   - %s with yield strength: %g MPa\n", m.Name, m.YieldStrength)
			}
		case shaft.KindReduceLoads:
			fmt.Fprintf(w, "%d. %s:\n", n, rec.Kind)
			for _, a := range rec.Adjustments {
				fmt.Fprintf(w, "   - Reduce %s (%s) by at least: %.2f %s (suggest reducing by %.0f%%)\n",
					a.Parameter, a.Symbol, a.Suggested, a.Unit, percent(shaft.LoadReductionFactor))
			}
		case shaft.KindReduceStressConcentration:
			fmt.Fprintf(w, "%d. %s:\n", n, rec.Kind)
			for _, a := range rec.Adjustments {
				fmt.Fprintf(w, "   - Current %s: %.2f, Suggested %s: %.2f (reduce by %.0f%%)\n",
					a.Symbol, a.Current, a.Symbol, a.Suggested, percent(shaft.StressConcentrationFactor))
			}
		case shaft.KindReduceSafetyFactor:
			fmt.Fprintf(w, "%d. %s:\n", n, rec.Kind)
			for _, a := range rec.Adjustments {
				fmt.Fprintf(w, "   - Current %s: %g, Suggested %s: %.2f (reduce by %.0f%%)\n",
					a.Symbol, a.Current, a.Symbol, a.Suggested, percent(shaft.SafetyFactorReductionFactor))
			}
		}
	}
	fmt.Fprintln(w)
}

// curveData sweeps the shaft's range for the diagrams
func curveData(s *shaft.Shaft, result *shaft.DesignResult) (diagram.CurveData, error) {
	sweep, err := s.Sweep()
	if err != nil {
		return diagram.CurveData{}, err
	}

	data := diagram.CurveData{
		Material:       s.Material.Name,
		Diameters:      make([]float64, len(sweep)),
		FactorOfSafety: make([]float64, len(sweep)),
		Target:         s.Requirement.FactorOfSafety,
	}
	for i, e := range sweep {
		data.Diameters[i] = e.Diameter
		data.FactorOfSafety[i] = e.FactorOfSafety
	}
	if result != nil && result.Found {
		data.Selected = result.Evaluation.Diameter
	}
	return data, nil
}
