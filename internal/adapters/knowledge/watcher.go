// Package knowledge ingests plain-text knowledge files into the vector
// store at runtime. A watched directory feeds AddDocument so the demo
// corpus can grow without restarting the process.
package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/internal/adapters/embedding"
	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
	"github.com/dealerdesk/dealerdesk/internal/domain/ports"
)

// Collection is where watched documents land in the vector store.
const Collection = "knowledge"

var watchedExtensions = []string{".txt", ".md", ".markdown"}

// Watcher monitors a directory and inserts created or modified text files
// into the vector store.
type Watcher struct {
	embedder ports.EmbeddingService
	store    ports.VectorStore
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a directory watcher feeding the given store.
func NewWatcher(embedder ports.EmbeddingService, store ports.VectorStore, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		embedder: embedder,
		store:    store,
		logger:   logger,
		watcher:  fsw,
	}, nil
}

// Watch ingests the directory's existing files, then blocks processing
// change events until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.ingestExisting(ctx, dir); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.logger.Info("watching knowledge directory", zap.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isWatched(event.Name) {
				continue
			}
			if err := w.IngestFile(ctx, event.Name); err != nil {
				w.logger.Warn("ingesting knowledge file failed",
					zap.String("path", event.Name), zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// IngestFile reads one file and adds it to the knowledge collection.
func (w *Watcher) IngestFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return nil
	}

	vec, err := w.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embedding %s: %w", path, err)
	}

	id, err := w.store.Add(ctx, entities.VectorDocument{
		Content: text,
		Metadata: map[string]string{
			"type":   string(embedding.BucketFor(text)),
			"source": filepath.Base(path),
		},
		Embedding: vec,
	}, Collection)
	if err != nil {
		return fmt.Errorf("storing %s: %w", path, err)
	}

	w.logger.Info("knowledge file ingested",
		zap.String("path", path), zap.String("id", id))
	return nil
}

func (w *Watcher) ingestExisting(ctx context.Context, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading knowledge directory: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !isWatched(f.Name()) {
			continue
		}
		if err := w.IngestFile(ctx, filepath.Join(dir, f.Name())); err != nil {
			w.logger.Warn("ingesting existing knowledge file failed",
				zap.String("file", f.Name()), zap.Error(err))
		}
	}
	return nil
}

func isWatched(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, watched := range watchedExtensions {
		if ext == watched {
			return true
		}
	}
	return false
}
