package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/internal/adapters/knowledge"
	httpserver "github.com/dealerdesk/dealerdesk/internal/infrastructure/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assistant HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck

		if a.cfg.KnowledgeDir != "" {
			watcher, err := knowledge.NewWatcher(a.embedder, a.store, a.logger)
			if err != nil {
				return err
			}
			defer watcher.Close()
			go func() {
				if err := watcher.Watch(ctx, a.cfg.KnowledgeDir); err != nil && ctx.Err() == nil {
					a.logger.Error("knowledge watcher stopped", zap.Error(err))
				}
			}()
		}

		server := httpserver.NewServer(
			a.assistant, a.generator, a.embedder, a.store, a.queryLog, a.logger,
			httpserver.Options{
				Addr:         fmt.Sprintf(":%d", a.cfg.Port),
				AllowOrigins: a.cfg.AllowOrigins,
				ReadTimeout:  time.Duration(a.cfg.HTTPReadTimeoutSeconds) * time.Second,
				WriteTimeout: time.Duration(a.cfg.HTTPWriteTimeoutSeconds) * time.Second,
			},
		)
		return server.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
