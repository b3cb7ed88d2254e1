package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/adapters/embedding"
	"github.com/dealerdesk/dealerdesk/internal/adapters/vectordb"
)

func newTestWatcher(t *testing.T) (*Watcher, *vectordb.MemoryStore) {
	t.Helper()
	store := vectordb.NewMemoryStore()
	w, err := NewWatcher(embedding.NewCategoryEmbedder(1), store, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, store
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestFile(t *testing.T) {
	w, store := newTestWatcher(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "claims-playbook.md", "How to escalate a rejected claim.")

	require.NoError(t, w.IngestFile(context.Background(), path))

	assert.Equal(t, 1, store.Stats()[Collection])

	results, err := store.Search(context.Background(), mustEmbed(t, "claim"), Collection, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "How to escalate a rejected claim.", results[0].Document.Content)
	assert.Equal(t, "claims", results[0].Document.Metadata["type"])
	assert.Equal(t, "claims-playbook.md", results[0].Document.Metadata["source"])
}

func TestIngestFileSkipsEmpty(t *testing.T) {
	w, store := newTestWatcher(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "   \n\t")

	require.NoError(t, w.IngestFile(context.Background(), path))

	assert.Zero(t, store.Stats()[Collection])
}

func TestIngestFileMissing(t *testing.T) {
	w, _ := newTestWatcher(t)

	err := w.IngestFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestWatchIngestsExistingFiles(t *testing.T) {
	w, store := newTestWatcher(t)
	dir := t.TempDir()
	writeFile(t, dir, "inventory-notes.txt", "Current stock levels for the west zone.")
	writeFile(t, dir, "sales-summary.md", "Quarterly revenue highlights.")
	writeFile(t, dir, "ignored.json", `{"not": "watched"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context stops Watch right after the initial sweep.
	err := w.Watch(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 2, store.Stats()[Collection])
}

func TestWatchMissingDirectory(t *testing.T) {
	w, _ := newTestWatcher(t)

	err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "absent"))

	assert.Error(t, err)
}

func TestIsWatched(t *testing.T) {
	assert.True(t, isWatched("notes.txt"))
	assert.True(t, isWatched("notes.MD"))
	assert.True(t, isWatched("deep/dir/notes.markdown"))
	assert.False(t, isWatched("notes.json"))
	assert.False(t, isWatched("notes"))
}

func mustEmbed(t *testing.T, text string) []float32 {
	t.Helper()
	vec, err := embedding.NewCategoryEmbedder(1).Embed(context.Background(), text)
	require.NoError(t, err)
	return vec
}
