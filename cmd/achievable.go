package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erlang-staff/erlang-staff/engine"
)

var actualAgents int // Headcount to evaluate in reverse mode

// achievableCmd runs the reverse solve: what a fixed headcount delivers.
var achievableCmd = &cobra.Command{
	Use:   "achievable",
	Short: "Evaluate the service level a fixed agent count can achieve",
	Run: func(cmd *cobra.Command, args []string) {
		model := engine.ParseModel(modelName)
		workload := engine.NewWorkload(volume, ahtSeconds, intervalMinutes)
		constraints := engine.NewConstraints(targetSL, thresholdSeconds, maxOccupancy)
		behavior := engine.NewBehavior(shrinkage, patienceSeconds, concurrency)

		logrus.Infof("Reverse solve: model=%s agents=%d volume=%.0f aht=%.0fs interval=%.0fmin cap=%.0f%%",
			model, actualAgents, volume, ahtSeconds, intervalMinutes, maxOccupancy*100)

		metrics, ok := engine.CalculateAchievableMetrics(model, actualAgents, workload, constraints, behavior)
		if !ok {
			logrus.Fatalf("model %s requires --patience > 0", model)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Actual agents:      %d\n", metrics.ActualAgents)
		fmt.Fprintf(out, "Service level:      %.1f%%\n", metrics.ServiceLevel*100)
		fmt.Fprintf(out, "ASA:                %s\n", formatSeconds(metrics.ASA))
		fmt.Fprintf(out, "Occupancy:          %.1f%%\n", metrics.Occupancy*100)
		if model == engine.ModelA {
			fmt.Fprintf(out, "Abandonment:        %.1f%%\n", metrics.AbandonmentRate*100)
		}
		if metrics.OccupancyCapApplied {
			fmt.Fprintf(out, "Occupancy cap %.0f%% exceeded: effective agents %.1f (penalty %.1f%%), need %d agents to honor the cap\n",
				maxOccupancy*100, metrics.EffectiveAgents, metrics.OccupancyPenalty*100,
				metrics.RequiredAgentsForMaxOccupancy)
		}
	},
}

func init() {
	addWorkloadFlags(achievableCmd)
	achievableCmd.Flags().IntVar(&actualAgents, "agents", 0, "Actual headcount to evaluate")
}
