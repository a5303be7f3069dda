package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/spf13/cobra"
)

var (
	checkInputs   shaftInputs
	checkDiameter float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a given shaft diameter",
	Long: `Calculate the von Mises stress, factor of safety and deflection
of a shaft of a given diameter and compare against the desired
factor of safety.

Examples:
  goshaft check --diameter 60 --torque 100 --moment 150 --axial 500 --length 500
  goshaft check -d 45 --file shaft.yaml`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkInputs.register(checkCmd)
	checkCmd.Flags().Float64VarP(&checkDiameter, "diameter", "d", 0, "Shaft diameter (mm) [required]")
	checkCmd.MarkFlagRequired("diameter")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := shaft.ValidateDiameter(checkDiameter); err != nil {
		return err
	}

	s, name, err := checkInputs.build()
	if err != nil {
		return err
	}

	eval, err := s.Check(checkDiameter)
	if err != nil {
		return err
	}
	logger.Info("diameter checked",
		"diameter_mm", eval.Diameter,
		"fos", eval.FactorOfSafety,
		"adequate", eval.Adequate)

	w := cmd.OutOrStdout()
	printHeader(w, "SHAFT CHECK - COMBINED LOADING (VON MISES)")
	printInputs(w, s, name)

	printSection(w, "CHECK RESULT:")
	printEvaluation(w, "Shaft Diameter", s, eval)
	fmt.Fprintln(w)
	if eval.Adequate {
		fmt.Fprintf(w, "  FoS = %.2f ≥ %.2f required ✓\n", eval.FactorOfSafety, s.Requirement.FactorOfSafety)
	} else {
		fmt.Fprintf(w, "  FoS = %.2f < %.2f required ✗\n", eval.FactorOfSafety, s.Requirement.FactorOfSafety)
		fmt.Fprintln(w, "  Status: Diameter NOT adequate. Run 'goshaft design' for the minimum diameter.")
	}
	fmt.Fprintln(w)
	return nil
}
