package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/inventory"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type catalogRow struct {
	Item     string `json:"item" yaml:"item"`
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Price    string `json:"price" yaml:"price"`
}

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the factory catalog",
	Long:  `Prints the items a freshly reset machine holds, with quantities and prices in dollars.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeCatalog(cmd.OutOrStdout(), inventory.NewDefault().Snapshot(), format)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringP("format", "f", "table", "Output format: table, yaml or json")
}

func writeCatalog(w io.Writer, entries []domain.CatalogEntry, format string) error {
	rows := make([]catalogRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, catalogRow{
			Item:     e.Key.String(),
			Name:     e.Key.DisplayName(),
			Quantity: e.Item.Quantity,
			Price:    e.Item.Price.StringFixed(2),
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ITEM\tQUANTITY\tPRICE")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t$%s\n", r.Name, r.Quantity, r.Price)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
	}
}
