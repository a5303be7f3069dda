package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	designInputs shaftInputs

	// Diagram options
	designShowDiagram bool
	designExportFile  string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Find the minimum shaft diameter for a target factor of safety",
	Long: `Scan candidate diameters from smallest to largest and report the
first one whose factor of safety meets the requirement.

For each diameter the von Mises stress of combined torsion, bending
and axial load is scaled by Kt and compared against the material's
yield strength. If no diameter in the scan range is adequate, design
modifications are suggested instead.

Examples:
  # Steel shaft, T=100 Nm, M=150 Nm, F=500 N, L=500 mm, FoS 2
  goshaft design --torque 100 --moment 150 --axial 500 --length 500 --fos 2

  # Titanium with a keyway (Kt=1.5) and explicit modulus
  goshaft design -t 100 -m 150 -f 500 -l 500 --material titanium --modulus 114 --kt 1.5

  # Inputs from a scenario file, with a factor of safety plot
  goshaft design --file shaft.yaml --diagram -o fos.png`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designInputs.register(designCmd)

	// Diagram options
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII factor of safety curve")
	designCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export factor of safety curve to file (png, svg, pdf)")
}

func runDesign(cmd *cobra.Command, args []string) error {
	s, name, err := designInputs.build()
	if err != nil {
		return err
	}

	logger.Info("searching minimum diameter",
		"material", s.Material.Name,
		"candidates", s.Range.Count(),
		"fos", s.Requirement.FactorOfSafety,
		"kt", s.Requirement.StressConcentration)

	result, err := s.Design()
	if err != nil {
		return err
	}

	if result.Found {
		logger.Info("diameter found",
			"diameter_mm", result.Evaluation.Diameter,
			"fos", result.Evaluation.FactorOfSafety,
			"evaluated", result.Candidates)
	} else {
		logger.Warn("no diameter in range satisfies the factor of safety",
			"min_mm", s.Range.Min,
			"max_mm", s.Range.Max,
			"evaluated", result.Candidates)
	}

	w := cmd.OutOrStdout()
	printHeader(w, "SHAFT DESIGN - COMBINED LOADING (VON MISES)")
	printInputs(w, s, name)
	printDesignResult(w, s, result)

	if !designShowDiagram && designExportFile == "" {
		return nil
	}

	data, err := curveData(s, result)
	if err != nil {
		return err
	}

	if designShowDiagram {
		fmt.Fprintln(w, diagram.DrawFactorOfSafetyCurve(data))
	}

	if designExportFile != "" {
		if err := diagram.ExportCurve(data, designExportFile); err != nil {
			fmt.Fprintf(w, "Error exporting diagram: %v\n", err)
		} else {
			fmt.Fprintf(w, "Diagram exported to: %s\n", designExportFile)
		}
	}
	return nil
}
