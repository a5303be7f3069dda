package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/goshaft/internal/config"
	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/alexiusacademia/goshaft/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	// Set by loadConfig before any command runs
	logger      = slog.New(slog.DiscardHandler)
	searchRange = shaft.DefaultRange
)

var rootCmd = &cobra.Command{
	Use:   "goshaft",
	Short: "Mechanical Shaft Sizing Tool",
	Long: `goshaft - Go Shaft Designer

A CLI tool for sizing solid circular shafts under combined
torsion, bending and axial load.

This tool helps mechanical designers:
  - Find the minimum diameter meeting a target factor of safety
  - Check an existing diameter (von Mises stress, FoS, deflection)
  - Get suggested design changes when no diameter is adequate

Stresses are combined with the von Mises criterion and scaled by
the stress concentration factor Kt.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintf(w, "  ║   goshaft v%-47s║\n", version.Version)
		fmt.Fprintln(w, "  ║   Go Shaft Designer                                       ║")
		fmt.Fprintf(w, "  ║   %-56s║\n", "© "+version.Year+" "+version.Owner)
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  A CLI tool for sizing mechanical shafts under combined loading.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Features:")
		fmt.Fprintln(w, "    • Minimum diameter search against a target factor of safety")
		fmt.Fprintln(w, "    • Von Mises stress, factor of safety and deflection checks")
		fmt.Fprintln(w, "    • Design suggestions when no diameter is adequate")
		fmt.Fprintln(w, "    • Interactive mode and YAML scenario files")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Use 'goshaft --help' to see available commands.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Owner)
		fmt.Fprintln(w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (overrides config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	logger = config.SetupLogger(cfg.Log, cmd.ErrOrStderr())

	searchRange, err = cfg.Search.Range()
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"config_file", configFile,
		"min_diameter_mm", searchRange.Min,
		"max_diameter_mm", searchRange.Max,
		"step_mm", searchRange.Step)
	return nil
}
