package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "buildingstock",
		Short: "Hourly energy simulation of a regional building stock",
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data", "data", "directory holding the <NUTS2>_preprocess.csv and <NUTS2>_solar.csv inventories")

	rootCmd.AddCommand(simulateCmd(&opts))
	rootCmd.AddCommand(validateCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func simulateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [payload.json] [start] [end] [building-use]",
		Short: "Run the full simulation and emit the hourly result series",
		Long: `Runs the hourly energy simulation for one building use over the
requested time window. Timestamps take the form yyyy-MM-ddTHH:mm:ss and
are truncated to the hour; the window is inclusive at both ends.`,
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(opts, args[0], args[1], args[2], args[3])
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result JSON to a file instead of stdout")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [payload.json] [start] [end] [building-use]",
		Short: "Validate the payload and data inventories without simulating",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(opts, args[0], args[1], args[2], args[3])
		},
	}
}
