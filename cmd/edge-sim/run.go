package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/fairway-edge/internal/cohort"
	"github.com/yourusername/fairway-edge/internal/service"
	"github.com/yourusername/fairway-edge/internal/simulation"
)

var runOpts struct {
	cohortPath string
	trials     int
	seed       int64
	minEdge    float64
	jsonOutput bool
	valueOnly  bool
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.cohortPath, "cohort", "", "Cohort JSON file (overrides simulation.cohort_path)")
	f.IntVar(&runOpts.trials, "trials", 0, "Number of trials (overrides simulation.trials)")
	f.Int64Var(&runOpts.seed, "seed", 0, "Random seed, 0 seeds from the clock (overrides simulation.seed)")
	f.Float64Var(&runOpts.minEdge, "min-edge", -1, "Minimum edge in percentage points to flag a value bet")
	f.BoolVar(&runOpts.jsonOutput, "json", false, "Print the result as JSON")
	f.BoolVar(&runOpts.valueOnly, "value-only", false, "Only print players whose edge clears the minimum")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyRunFlags(cmd)
		if err := validateConfig(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := service.NewSimulationService(
			newEngine(),
			cohort.NewCachedLoader(cfg.Watch.CacheTTL()),
			cfg.Weights,
			service.SimulationConfig{
				CohortPath:     cfg.Simulation.CohortPath,
				Trials:         cfg.Simulation.Trials,
				MinEdgePercent: cfg.Simulation.MinEdgePercent,
			},
			appLog,
		)

		result, err := svc.Recompute(ctx, service.TriggerCLI)
		if err != nil {
			return err
		}

		if runOpts.jsonOutput {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		return writeTable(cmd.OutOrStdout(), svc.Event(), result, cfg.Simulation.MinEdgePercent, runOpts.valueOnly)
	},
}

func applyRunFlags(cmd *cobra.Command) {
	if runOpts.cohortPath != "" {
		cfg.Simulation.CohortPath = runOpts.cohortPath
	}
	if runOpts.trials > 0 {
		cfg.Simulation.Trials = runOpts.trials
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = runOpts.seed
	}
	if runOpts.minEdge >= 0 {
		cfg.Simulation.MinEdgePercent = runOpts.minEdge
	}
}

func writeJSON(w io.Writer, result *simulation.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeTable(w io.Writer, event string, result *simulation.Result, minEdge float64, valueOnly bool) error {
	if event != "" {
		fmt.Fprintf(w, "%s\n", event)
	}
	fmt.Fprintf(w, "Run %s: %d players, %d trials, top %d", result.RunID, result.CohortSize, result.Trials, result.TopN)
	if result.TiedTrials > 0 {
		fmt.Fprintf(w, ", %d tied", result.TiedTrials)
	}
	fmt.Fprintf(w, " (%s)\n\n", result.Duration.Round(time.Microsecond))

	players := result.RankedByWin()
	if valueOnly {
		players = result.ValueBets(minEdge)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Player\tOdds\tImplied %\tWin %\tTop 10 %\tAvg Finish\tFair\tEdge\tEV\t")
	for _, p := range players {
		odds, implied, edge, ev := "-", "-", "-", "-"
		if p.HasMarket {
			odds = formatAmerican(p.Odds)
			implied = fmt.Sprintf("%.1f", p.ImpliedProbability*100)
			edge = fmt.Sprintf("%+.2f", p.Edge)
			ev = fmt.Sprintf("%+.2f", p.ExpectedValue)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%.1f\t%.2f\t%s\t%s\t%s\t\n",
			p.Name, odds, implied, p.WinPercentage, p.Top10Percentage, p.AverageFinish,
			formatAmerican(p.FairOdds), edge, ev)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.UnknownMetrics) > 0 {
		fmt.Fprintf(w, "\nIgnored unknown metrics: %v\n", result.UnknownMetrics)
	}
	return nil
}

func formatAmerican(odds int) string {
	if odds == 0 {
		return "-"
	}
	return fmt.Sprintf("%+d", odds)
}
