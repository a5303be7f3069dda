package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goshaft/internal/materials"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		printHeader(w, "MATERIAL CATALOG")

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  #\tMaterial\tSy (MPa)\tE typical (GPa)\n")
		fmt.Fprintf(tw, "  ─\t────────\t────────\t───────────────\n")
		for i, m := range materials.List() {
			fmt.Fprintf(tw, "  %d\t%s\t%g\t%g\n", i+1, m.Name, m.YieldStrength, m.TypicalModulus)
		}
		tw.Flush()
		fmt.Fprintln(w)
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
