package entities

// EmbeddingDimensions is the fixed width of every stub embedding.
const EmbeddingDimensions = 384

// VectorDocument is a text document with its embedding, stored inside a
// named collection.
type VectorDocument struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
	Embedding []float32         `json:"-"`
}

// CategoryMeta returns the document's category metadata, or CategoryGeneral
// when the document carries none.
func (d VectorDocument) CategoryMeta() Category {
	if t, ok := d.Metadata["type"]; ok && t != "" {
		return Category(t)
	}
	return CategoryGeneral
}

// SearchResult pairs a document with its cosine similarity to a query.
type SearchResult struct {
	Document   VectorDocument `json:"document"`
	Similarity float64        `json:"similarity"`
}
