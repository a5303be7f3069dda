package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/prompt"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter design inputs at prompts",
	Long: `Ask for each design input in turn, re-asking until the value is
valid, then run the minimum diameter search.

Young's modulus is entered in GPa.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	s, err := prompt.Collect(prompt.NewConsole(cmd.InOrStdin(), w))
	if err != nil {
		return err
	}
	s.Range = searchRange

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Calculating minimum shaft diameter...")
	fmt.Fprintln(w)

	result, err := s.Design()
	if err != nil {
		return err
	}
	logger.Info("interactive design finished", "found", result.Found, "evaluated", result.Candidates)

	if !result.Found {
		printRecommendations(w, result.Recommendations)
		return nil
	}
	printEvaluation(w, "Minimum Shaft Diameter", s, result.Evaluation)
	return nil
}
