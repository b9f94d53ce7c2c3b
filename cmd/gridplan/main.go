package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridplan",
		Short: "Mini-grid distribution network planner",
	}

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(costCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func planCmd() *cobra.Command {
	var maxSpan float64

	cmd := &cobra.Command{
		Use:   "plan [site-file]",
		Short: "Synthesize the pole-and-wire network for a site and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0], maxSpan)
		},
	}

	cmd.Flags().Float64VarP(&maxSpan, "max-span", "s", 0,
		"maximum wire span in meters (overrides the site file and the default)")
	return cmd
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [site-file]",
		Short: "Compute and display the cost breakdown for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCost(args[0])
		},
	}
}
