// Package vectordb provides the in-memory vector store. Documents live in
// named collections, analogous to tables in a real vector database.
package vectordb

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// CollectionAll selects every collection in a search.
const CollectionAll = "all"

// MemoryStore implements ports.VectorStore. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]entities.VectorDocument
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]entities.VectorDocument),
	}
}

// Search ranks documents by cosine similarity to the query embedding,
// descending, truncated to limit. An empty or "all" collection name searches
// everything; an unknown collection yields no results.
func (s *MemoryStore) Search(ctx context.Context, embedding []float32, collection string, limit int) ([]entities.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var docs []entities.VectorDocument
	if collection == "" || collection == CollectionAll {
		// Gather in sorted collection order so equal similarities rank
		// the same on every call.
		names := make([]string, 0, len(s.collections))
		for name := range s.collections {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			docs = append(docs, s.collections[name]...)
		}
	} else {
		docs = append(docs, s.collections[collection]...)
	}
	s.mu.RUnlock()

	results := make([]entities.SearchResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, entities.SearchResult{
			Document:   doc,
			Similarity: cosineSimilarity(embedding, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Add stores a document in the named collection, creating the collection if
// it does not exist, and returns the document id.
func (s *MemoryStore) Add(ctx context.Context, doc entities.VectorDocument, collection string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if collection == "" {
		collection = "general"
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], doc)
	s.mu.Unlock()

	return doc.ID, nil
}

// Stats reports the document count per collection.
func (s *MemoryStore) Stats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int, len(s.collections))
	for name, docs := range s.collections {
		stats[name] = len(docs)
	}
	return stats
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
