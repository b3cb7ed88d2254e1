// Package embedding provides the stub embedder. Vectors are category-biased
// noise: a keyword bucket decides two leading constants and every other
// dimension is random. The point is plausible-looking similarity scores for
// the demo, not real semantics.
package embedding

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// CategoryEmbedder implements ports.EmbeddingService.
type CategoryEmbedder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCategoryEmbedder creates an embedder. Zero seed selects a time-based
// source.
func NewCategoryEmbedder(seed int64) *CategoryEmbedder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &CategoryEmbedder{rng: rand.New(rand.NewSource(seed))}
}

// Embed generates a category-biased pseudo-embedding for the text.
func (e *CategoryEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float32, entities.EmbeddingDimensions)

	e.mu.Lock()
	for i := range vec {
		vec[i] = float32(e.rng.Float64() - 0.5)
	}
	e.mu.Unlock()

	// The two leading dimensions dominate cosine similarity between texts
	// in the same bucket; the rest is noise.
	switch BucketFor(text) {
	case entities.CategoryInventory:
		vec[0], vec[1] = 0.8, 0.6
	case entities.CategoryClaims:
		vec[0], vec[1] = 0.2, 0.9
	case entities.CategorySales:
		vec[0], vec[1] = 0.9, 0.3
	}
	return vec, nil
}

// BucketFor maps text onto an answer category by keyword substring match.
// Precedence: inventory, then claims, then sales, then general.
func BucketFor(text string) entities.Category {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "sku"),
		strings.Contains(lower, "inventory"),
		strings.Contains(lower, "stock"):
		return entities.CategoryInventory
	case strings.Contains(lower, "claim"):
		return entities.CategoryClaims
	case strings.Contains(lower, "sales"),
		strings.Contains(lower, "revenue"):
		return entities.CategorySales
	default:
		return entities.CategoryGeneral
	}
}
