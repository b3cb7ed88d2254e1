package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dealerdesk/dealerdesk/config"
	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

var (
	analyticsAddr string
	analyticsRole string
)

// The query log lives inside the serving process, so this command reads it
// over the HTTP API instead of wiring its own app.
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show query analytics from a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := analyticsAddr
		if addr == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			addr = fmt.Sprintf("http://localhost:%d", cfg.Port)
		}

		client := &http.Client{Timeout: 10 * time.Second}

		if analyticsRole != "" {
			var stats entities.RoleStats
			if err := fetchJSON(client, addr+"/api/analytics/roles/"+analyticsRole, &stats); err != nil {
				return err
			}
			heading := color.New(color.FgCyan, color.Bold)
			heading.Printf("Analytics for role %s\n", stats.Role)
			color.Green("  queries:        %d", stats.Count)
			color.Green("  top category:   %s", stats.TopCategory)
			color.Green("  avg confidence: %.2f", stats.AvgConfidence)
			return nil
		}

		var stats entities.QueryStats
		if err := fetchJSON(client, addr+"/api/analytics", &stats); err != nil {
			return err
		}

		heading := color.New(color.FgCyan, color.Bold)
		heading.Println("Query analytics")
		color.Green("  total queries:   %d", stats.TotalQueries)
		color.Green("  avg processing:  %.0fms", stats.AvgProcessingMs)
		color.Green("  avg confidence:  %.2f", stats.AvgConfidence)

		if len(stats.Categories) > 0 {
			heading.Println("By category")
			for category, count := range stats.Categories {
				color.Yellow("  %s: %d", category, count)
			}
		}

		if len(stats.RecentEntries) > 0 {
			heading.Println("Recent queries")
			faint := color.New(color.Faint)
			for _, e := range stats.RecentEntries {
				faint.Printf("  [%s] %s (%s, %.2f)\n",
					e.Timestamp.Format("15:04:05"), e.Query, e.Category, e.Confidence)
			}
		}
		return nil
	},
}

func fetchJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

func init() {
	analyticsCmd.Flags().StringVar(&analyticsAddr, "addr", "",
		"base URL of a running server (default http://localhost:$PORT)")
	analyticsCmd.Flags().StringVar(&analyticsRole, "role", "",
		"limit stats to one role: dealer, sales_rep or admin")
	rootCmd.AddCommand(analyticsCmd)
}
