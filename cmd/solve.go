package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erlang-staff/erlang-staff/engine"
)

// solveCmd runs the forward solve: minimum agents for the target.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve for the minimum agents that meet the service target",
	Run: func(cmd *cobra.Command, args []string) {
		model := engine.ParseModel(modelName)
		workload := engine.NewWorkload(volume, ahtSeconds, intervalMinutes)
		constraints := engine.NewConstraints(targetSL, thresholdSeconds, maxOccupancy)
		behavior := engine.NewBehavior(shrinkage, patienceSeconds, concurrency)

		logrus.Infof("Forward solve: model=%s volume=%.0f aht=%.0fs interval=%.0fmin target=%.0f%%/%.0fs",
			model, volume, ahtSeconds, intervalMinutes, targetSL*100, thresholdSeconds)

		metrics, ok := engine.CalculateStaffingMetrics(model, workload, constraints, behavior)
		if !ok {
			logrus.Fatalf("model %s requires --patience > 0", model)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Traffic intensity:  %.2f Erlangs\n", metrics.TrafficIntensity)
		if !metrics.CanAchieveTarget {
			fmt.Fprintf(out, "Target %.1f%%/%.0fs is not achievable within the search ceiling\n",
				targetSL*100, thresholdSeconds)
			return
		}
		fmt.Fprintf(out, "Required agents:    %d\n", metrics.RequiredAgents)
		fmt.Fprintf(out, "Total FTE:          %s\n", formatFTE(metrics.TotalFTE))
		fmt.Fprintf(out, "Service level:      %.1f%%\n", metrics.ServiceLevel*100)
		fmt.Fprintf(out, "ASA:                %s\n", formatSeconds(metrics.ASA))
		fmt.Fprintf(out, "Occupancy:          %.1f%%\n", metrics.Occupancy*100)
		if model == engine.ModelA {
			fmt.Fprintf(out, "Abandonment:        %.1f%%\n", metrics.AbandonmentRate*100)
		}
	},
}

// formatSeconds renders an ASA, spelling out the unstable sentinel.
func formatSeconds(v float64) string {
	if math.IsInf(v, 1) {
		return "unbounded (unstable queue)"
	}
	return fmt.Sprintf("%.1fs", v)
}

// formatFTE renders a headcount, spelling out the 100%-shrinkage sentinel.
func formatFTE(v float64) string {
	if math.IsInf(v, 1) {
		return "unbounded (shrinkage at 100%)"
	}
	return fmt.Sprintf("%.1f", v)
}

func init() {
	addWorkloadFlags(solveCmd)
}
