// Package ports defines the interfaces the assistant depends on. Usecases
// depend on these abstractions; adapters implement them.
package ports

import (
	"context"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// DatasetProvider yields the demo dataset. Implementations generate it at
// most once and return the same snapshot on every call.
type DatasetProvider interface {
	// Dataset returns the memoized snapshot. It cannot fail; generation is
	// pure in-memory synthesis.
	Dataset() *entities.Dataset
}

// EmbeddingService turns text into a fixed-length vector.
type EmbeddingService interface {
	// Embed generates an embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorStore holds embedded documents in named collections and ranks them
// by cosine similarity. Documents can be added at runtime; there is no
// deletion.
type VectorStore interface {
	// Search ranks every document in the collection (empty or "all" means
	// every collection) against the query embedding, descending, truncated
	// to limit.
	Search(ctx context.Context, embedding []float32, collection string, limit int) ([]entities.SearchResult, error)

	// Add stores a document, creating the collection if needed, and returns
	// the generated document id.
	Add(ctx context.Context, doc entities.VectorDocument, collection string) (string, error)

	// Stats reports the document count per collection.
	Stats() map[string]int
}

// QueryLog records query events and serves aggregate views over the most
// recent ones.
type QueryLog interface {
	// Record appends an entry. The log assigns the id and timestamp and
	// evicts the oldest entries past its capacity.
	Record(entry entities.QueryLogEntry)

	// Stats aggregates over the whole retained buffer.
	Stats() entities.QueryStats

	// StatsForRole aggregates over entries recorded for one role.
	StatsForRole(role entities.Role) entities.RoleStats
}
