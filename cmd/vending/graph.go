package main

import (
	"fmt"

	"github.com/aretw0/vending/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the customer flow as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the purchase flow, including the recovery paths for insufficient funds.`,
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := cmd.Flags().GetString("highlight")

		var overlay *graph.Overlay
		if current != "" {
			overlay = &graph.Overlay{Current: current}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(graph.PurchaseFlow(), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("highlight", "", "Step to highlight (e.g. directive)")
}
