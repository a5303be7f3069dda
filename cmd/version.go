package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goshaft",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, version.String())
		fmt.Fprintln(w, "Mechanical Shaft Sizing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
