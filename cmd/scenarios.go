package cmd

import (
	"context"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erlang-staff/erlang-staff/engine/scenario"
)

var (
	scenarioFile  string // Path to the YAML scenario file
	parallelism   int    // Concurrent scenario evaluations (0 = unbounded)
	compareModels bool   // Re-run every forward scenario under B, C, and A
)

// scenariosCmd evaluates a YAML file of what-if scenarios.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Evaluate a YAML file of what-if staffing scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioFile == "" {
			logrus.Fatalf("scenario file not provided; use --file")
		}
		f, err := scenario.Load(scenarioFile)
		if err != nil {
			logrus.Fatalf("unable to load scenario file: %v", err)
		}
		if compareModels {
			f = expandForComparison(f)
		}
		logrus.Infof("Evaluating %d scenarios from %s", len(f.Scenarios), scenarioFile)

		results, err := scenario.Run(context.Background(), f, parallelism)
		if err != nil {
			logrus.Fatalf("scenario run failed: %v", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCENARIO\tMODE\tERLANGS\tAGENTS\tFTE\tSL\tASA\tOCC")
		for _, r := range results {
			printResult(w, r)
		}
		w.Flush()
	},
}

// expandForComparison clones every forward scenario once per model.
func expandForComparison(f *scenario.File) *scenario.File {
	out := &scenario.File{Version: f.Version}
	for _, s := range f.Scenarios {
		if s.ActualAgents > 0 {
			out.Scenarios = append(out.Scenarios, s)
			continue
		}
		for _, m := range []string{"B", "C", "A"} {
			c := s
			c.Name = s.Name + "/" + m
			c.Model = m
			out.Scenarios = append(out.Scenarios, c)
		}
	}
	return out
}

func printResult(w *tabwriter.Writer, r scenario.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t-\t-\t(%v)\n", r.Scenario.Name, r.Err)
		return
	}
	if r.Reverse != nil {
		m := r.Reverse
		fmt.Fprintf(w, "%s\treverse\t-\t%d\t-\t%.1f%%\t%s\t%.1f%%\n",
			r.Scenario.Name, m.ActualAgents, m.ServiceLevel*100, tabSeconds(m.ASA), m.Occupancy*100)
		return
	}
	m := r.Forward
	if !m.CanAchieveTarget {
		fmt.Fprintf(w, "%s\tforward\t%.2f\t-\t-\t-\t-\t-\t(target infeasible)\n",
			r.Scenario.Name, m.TrafficIntensity)
		return
	}
	fmt.Fprintf(w, "%s\tforward\t%.2f\t%d\t%.1f\t%.1f%%\t%s\t%.1f%%\n",
		r.Scenario.Name, m.TrafficIntensity, m.RequiredAgents, m.TotalFTE,
		m.ServiceLevel*100, tabSeconds(m.ASA), m.Occupancy*100)
}

func tabSeconds(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1fs", v)
}

func init() {
	scenariosCmd.Flags().StringVar(&scenarioFile, "file", "", "Path to the YAML scenario file")
	scenariosCmd.Flags().IntVar(&parallelism, "parallelism", 0, "Concurrent scenario evaluations (0 = unbounded)")
	scenariosCmd.Flags().BoolVar(&compareModels, "compare", false, "Evaluate each forward scenario under all three models")
}
