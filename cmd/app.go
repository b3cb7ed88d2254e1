package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/config"
	"github.com/dealerdesk/dealerdesk/internal/adapters/analytics"
	"github.com/dealerdesk/dealerdesk/internal/adapters/embedding"
	"github.com/dealerdesk/dealerdesk/internal/adapters/mockdata"
	"github.com/dealerdesk/dealerdesk/internal/adapters/vectordb"
	"github.com/dealerdesk/dealerdesk/internal/domain/usecases"
	"github.com/dealerdesk/dealerdesk/internal/infrastructure/logging"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	generator *mockdata.Generator
	embedder  *embedding.CategoryEmbedder
	store     *vectordb.MemoryStore
	queryLog  *analytics.Log
	assistant *usecases.Assistant
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		return nil, err
	}

	generator := mockdata.NewGenerator(mockdata.Counts{
		Dealers:   cfg.DealerCount,
		Inventory: cfg.InventoryCount,
		Claims:    cfg.ClaimCount,
		Sales:     cfg.SalesCount,
	}, cfg.RandomSeed, logger)

	embedder := embedding.NewCategoryEmbedder(cfg.RandomSeed)
	store := vectordb.NewMemoryStore()
	if err := vectordb.Seed(ctx, store, embedder); err != nil {
		return nil, fmt.Errorf("seeding vector corpus: %w", err)
	}

	assistant := usecases.NewAssistant(generator, embedder, store, logger, usecases.Options{
		DelayMin:            time.Duration(cfg.DelayMinMs) * time.Millisecond,
		DelayMax:            time.Duration(cfg.DelayMaxMs) * time.Millisecond,
		SearchLimit:         cfg.SearchLimit,
		SimilarityThreshold: cfg.SimilarityThreshold,
		VectorSearch:        cfg.VectorSearchEnabled,
		Seed:                cfg.RandomSeed,
	})

	return &app{
		cfg:       cfg,
		logger:    logger,
		generator: generator,
		embedder:  embedder,
		store:     store,
		queryLog:  analytics.NewLog(cfg.AnalyticsCapacity),
		assistant: assistant,
	}, nil
}
