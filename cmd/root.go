package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level

	// CLI flags for the interval workload
	volume          float64 // Expected contacts in the interval
	ahtSeconds      float64 // Average handle time (seconds)
	intervalMinutes float64 // Interval length (minutes)

	// CLI flags for service objectives
	modelName        string  // Queueing model: B, C, or A
	targetSL         float64 // Target service level fraction
	thresholdSeconds float64 // Answer-time threshold (seconds)
	maxOccupancy     float64 // Agent occupancy ceiling fraction

	// CLI flags for workforce behavior
	shrinkage       float64 // Shrinkage fraction
	patienceSeconds float64 // Average caller patience (seconds, Erlang A)
	concurrency     int     // Simultaneous contacts per agent
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "erlang-staff",
	Short: "Erlang B/C/A staffing calculator for contact centers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addWorkloadFlags registers the flags shared by solve and achievable.
func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&volume, "volume", 0, "Expected contacts in the interval")
	cmd.Flags().Float64Var(&ahtSeconds, "aht", 240, "Average handle time in seconds")
	cmd.Flags().Float64Var(&intervalMinutes, "interval", 30, "Interval length in minutes")

	cmd.Flags().StringVar(&modelName, "model", "C", "Queueing model (B, C, or A; erlangC-style aliases accepted)")
	cmd.Flags().Float64Var(&targetSL, "target-sl", 0.8, "Target service level as a fraction")
	cmd.Flags().Float64Var(&thresholdSeconds, "threshold", 20, "Answer-time threshold in seconds")
	cmd.Flags().Float64Var(&maxOccupancy, "max-occupancy", 0.85, "Agent occupancy ceiling as a fraction")

	cmd.Flags().Float64Var(&shrinkage, "shrinkage", 0.3, "Shrinkage fraction (breaks, training, etc.)")
	cmd.Flags().Float64Var(&patienceSeconds, "patience", 0, "Average caller patience in seconds (required for model A)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "Simultaneous contacts per agent")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(achievableCmd)
	rootCmd.AddCommand(scenariosCmd)
}
