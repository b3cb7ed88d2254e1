package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Print a summary of the generated demo dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck

		dataset := a.generator.Dataset()

		var inventoryValue, claimValue, revenue int64
		for _, item := range dataset.Inventory {
			inventoryValue += int64(item.Quantity) * item.UnitPrice
		}
		for _, claim := range dataset.Claims {
			claimValue += claim.Amount
		}
		for _, sale := range dataset.Sales {
			revenue += sale.TotalAmount
		}

		heading := color.New(color.FgCyan, color.Bold)
		heading.Println("Generated dataset")
		color.Green("  dealers:          %d", len(dataset.Dealers))
		color.Green("  inventory items:  %d (value ₹%d)", len(dataset.Inventory), inventoryValue)
		color.Green("  claims:           %d (value ₹%d)", len(dataset.Claims), claimValue)
		color.Green("  sales:            %d (revenue ₹%d)", len(dataset.Sales), revenue)

		heading.Println("Vector collections")
		for name, count := range a.store.Stats() {
			color.Yellow("  %s: %d documents", name, count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}
