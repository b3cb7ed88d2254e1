package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
	"github.com/dealerdesk/dealerdesk/internal/domain/usecases"
)

var askRole string

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Ask the assistant a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck

		query := strings.Join(args, " ")
		result, err := a.assistant.Answer(cmd.Context(), query, entities.Role(askRole))
		if err != nil {
			fmt.Println(usecases.Apology)
			return nil
		}

		a.queryLog.Record(entities.QueryLogEntry{
			Query:            query,
			Role:             entities.Role(askRole),
			Category:         result.Metadata.Category,
			ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
			Confidence:       result.Metadata.Confidence,
			VectorResults:    result.Metadata.VectorResults,
			TopSimilarity:    result.Metadata.TopSimilarity,
		})

		fmt.Println(result.Response)
		fmt.Println()
		faint := color.New(color.Faint)
		faint.Printf("category=%s confidence=%.2f processing=%dms vectorResults=%d\n",
			result.Metadata.Category,
			result.Metadata.Confidence,
			result.Metadata.ProcessingTimeMs,
			result.Metadata.VectorResults,
		)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askRole, "role", string(entities.RoleAdmin),
		"caller role: dealer, sales_rep or admin")
	rootCmd.AddCommand(askCmd)
}
