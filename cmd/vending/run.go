package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive vending machine",
	Long:  `Starts the machine with the default catalog and serves customers and the administrator on this console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(runOptions(cmd))
	},
}

func runOptions(cmd *cobra.Command) cli.RunOptions {
	configFile, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	headless, _ := cmd.Flags().GetBool("headless")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	return cli.RunOptions{
		ConfigFile:  configFile,
		Debug:       debug,
		Headless:    headless,
		MetricsAddr: metricsAddr,
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Skip the banner and interruption notices")
	runCmd.Flags().String("metrics-addr", "", "Serve /metrics, /healthz and /journal on this address")

	// 'run' is the default when no command is provided
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
