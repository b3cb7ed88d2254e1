package vectordb

import (
	"context"
	"fmt"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
	"github.com/dealerdesk/dealerdesk/internal/domain/ports"
)

// seedDoc is one entry of the fixed demo corpus.
type seedDoc struct {
	id         string
	content    string
	metadata   map[string]string
	collection string
}

var seedCorpus = []seedDoc{
	{
		id:         "inv_1",
		content:    "SKU inventory stock availability warehouse Chennai zone quantity units",
		metadata:   map[string]string{"type": "inventory", "warehouse": "Chennai", "zone": "Zone 1"},
		collection: "inventory",
	},
	{
		id:         "inv_2",
		content:    "SKU stock levels low inventory critical shortage products",
		metadata:   map[string]string{"type": "inventory", "status": "low_stock"},
		collection: "inventory",
	},
	{
		id:         "claim_1",
		content:    "claim status pending approved rejected dealer claim number processing",
		metadata:   map[string]string{"type": "claims", "status": "processing"},
		collection: "claims",
	},
	{
		id:         "sales_1",
		content:    "sales revenue performance monthly quarterly analytics trends",
		metadata:   map[string]string{"type": "sales", "period": "monthly"},
		collection: "sales",
	},
}

// Seed loads the fixed demo corpus into the store so queries have something
// to rank against before any runtime documents arrive.
func Seed(ctx context.Context, store ports.VectorStore, embedder ports.EmbeddingService) error {
	for _, doc := range seedCorpus {
		vec, err := embedder.Embed(ctx, doc.content)
		if err != nil {
			return fmt.Errorf("embedding seed document %s: %w", doc.id, err)
		}
		_, err = store.Add(ctx, entities.VectorDocument{
			ID:        doc.id,
			Content:   doc.content,
			Metadata:  doc.metadata,
			Embedding: vec,
		}, doc.collection)
		if err != nil {
			return fmt.Errorf("seeding document %s: %w", doc.id, err)
		}
	}
	return nil
}
