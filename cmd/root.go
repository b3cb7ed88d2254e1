package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dealerdesk",
	Short: "Manufacturing dealer assistant demo",
	Long: `DealerDesk is a demo AI assistant for manufacturing dealers: a canned
query engine over generated inventory, claims and sales data, with a stub
vector search and in-process query analytics.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
