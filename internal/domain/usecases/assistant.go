// Package usecases holds the assistant: query classification, per-category
// answer building, and markdown rendering over the typed payloads.
package usecases

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
	"github.com/dealerdesk/dealerdesk/internal/domain/ports"
)

// Apology is the fixed fallback message transports show when the assistant
// itself fails. The chat surface never renders a raw error.
const Apology = "I apologize, but I ran into a problem answering that. Please try again in a moment."

// Options tunes the assistant. The delay window emulates network latency so
// the chat UI shows its loading state; it is a deliberate design element.
type Options struct {
	DelayMin            time.Duration
	DelayMax            time.Duration
	SearchLimit         int
	SimilarityThreshold float64
	VectorSearch        bool
	Seed                int64
}

// DefaultOptions returns the interactive defaults.
func DefaultOptions() Options {
	return Options{
		DelayMin:            time.Second,
		DelayMax:            3 * time.Second,
		SearchLimit:         3,
		SimilarityThreshold: 0.3,
		VectorSearch:        true,
	}
}

// Assistant answers free-text queries against the demo dataset.
type Assistant struct {
	data     ports.DatasetProvider
	embedder ports.EmbeddingService
	store    ports.VectorStore
	logger   *zap.Logger
	opts     Options

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssistant creates an assistant with injected dependencies.
func NewAssistant(
	data ports.DatasetProvider,
	embedder ports.EmbeddingService,
	store ports.VectorStore,
	logger *zap.Logger,
	opts Options,
) *Assistant {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 3
	}
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = 0.3
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		data:     data,
		embedder: embedder,
		store:    store,
		logger:   logger,
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Answer classifies the query, builds the category answer, and renders it.
// Lookup misses and ambiguity degrade to renderable text; the only error
// path is context cancellation during the simulated delay.
func (a *Assistant) Answer(ctx context.Context, query string, role entities.Role) (*entities.QueryResult, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}
	start := time.Now()

	// Whitespace-only input goes straight to the help text; no search, no
	// dataset lookup.
	if strings.TrimSpace(query) == "" {
		help := entities.GeneralHelp{}
		return a.finish(start, entities.CategoryGeneral, help, renderGeneralHelp(help), nil), nil
	}

	results := a.search(ctx, query)

	category := a.classify(query, results)
	var topSimilarity float64
	if len(results) > 0 {
		topSimilarity = results[0].Similarity
	}

	var data entities.ResultData
	var response string
	switch category {
	case entities.CategoryInventory:
		data, response = a.answerInventory(query)
	case entities.CategoryClaims:
		data, response = a.answerClaims(query, role)
	case entities.CategorySales:
		data, response = a.answerSales()
	default:
		help := entities.GeneralHelp{}
		if len(results) > 0 {
			help.ContextCategory = results[0].Document.CategoryMeta()
		}
		data, response = help, renderGeneralHelp(help)
	}

	a.logger.Debug("query answered",
		zap.String("query", query),
		zap.String("role", string(role)),
		zap.String("category", string(category)),
		zap.Float64("topSimilarity", topSimilarity),
	)

	result := a.finish(start, category, data, response, results)
	return result, nil
}

func (a *Assistant) finish(start time.Time, category entities.Category, data entities.ResultData, response string, results []entities.SearchResult) *entities.QueryResult {
	var topSimilarity float64
	if len(results) > 0 {
		topSimilarity = results[0].Similarity
	}
	return &entities.QueryResult{
		Response: response,
		Data:     data,
		Metadata: entities.QueryMetadata{
			Category:         category,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Confidence:       0.85 + a.randFloat()*0.1,
			VectorResults:    len(results),
			TopSimilarity:    topSimilarity,
		},
	}
}

// search runs the stub vector search. Failures degrade to keyword-only
// classification instead of failing the query.
func (a *Assistant) search(ctx context.Context, query string) []entities.SearchResult {
	if !a.opts.VectorSearch {
		return nil
	}
	vec, err := a.embedder.Embed(ctx, query)
	if err != nil {
		a.logger.Warn("embedding query failed", zap.Error(err))
		return nil
	}
	results, err := a.store.Search(ctx, vec, "", a.opts.SearchLimit)
	if err != nil {
		a.logger.Warn("vector search failed", zap.Error(err))
		return nil
	}
	return results
}

// classify adopts the top vector hit's category when its similarity clears
// the threshold, layered under direct keyword matches with precedence
// inventory, claims, sales, general.
func (a *Assistant) classify(query string, results []entities.SearchResult) entities.Category {
	var vectorCategory entities.Category
	if len(results) > 0 && results[0].Similarity > a.opts.SimilarityThreshold {
		vectorCategory = results[0].Document.CategoryMeta()
	}

	lower := strings.ToLower(query)
	switch {
	case vectorCategory == entities.CategoryInventory || containsAny(lower, "sku", "inventory", "stock"):
		return entities.CategoryInventory
	case vectorCategory == entities.CategoryClaims || strings.Contains(lower, "claim"):
		return entities.CategoryClaims
	case vectorCategory == entities.CategorySales || containsAny(lower, "sales", "revenue"):
		return entities.CategorySales
	default:
		return entities.CategoryGeneral
	}
}

func (a *Assistant) simulateLatency(ctx context.Context) error {
	if a.opts.DelayMax <= 0 {
		return nil
	}
	delay := a.opts.DelayMin
	if span := a.opts.DelayMax - a.opts.DelayMin; span > 0 {
		delay += time.Duration(a.randFloat() * float64(span))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *Assistant) randFloat() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
