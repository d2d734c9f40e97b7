package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/fairway-edge/internal/stats"
)

var listMetricsCmd = &cobra.Command{
	Use:   "list-metrics",
	Short: "List the metric ids that can be weighted",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "METRIC\tFAMILY\tBETTER")
		for _, d := range stats.Describe() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Family, d.Polarity)
		}
		return tw.Flush()
	},
}
