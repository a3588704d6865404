package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/rag"
)

// Ingester embeds markdown documents and loads them into the knowledge index.
type Ingester struct {
	store        *rag.KnowledgeStore
	embedder     rag.Embedder
	chunkSize    int
	chunkOverlap int
	logger       *observability.Logger
}

// NewIngester creates a knowledge base ingester
func NewIngester(store *rag.KnowledgeStore, embedder rag.Embedder, chunkSize, chunkOverlap int, logger *observability.Logger) *Ingester {
	return &Ingester{
		store:        store,
		embedder:     embedder,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		logger:       logger,
	}
}

// IngestDirectory walks docsPath for .md files, chunks and embeds each, and
// inserts the chunks with source metadata. Returns the number of chunks
// ingested.
func (in *Ingester) IngestDirectory(ctx context.Context, docsPath string) (int, error) {
	if err := in.store.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	total := 0
	err := filepath.WalkDir(docsPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		n, err := in.ingestFile(ctx, path)
		if err != nil {
			// Skip the bad document, keep ingesting the rest.
			in.logger.Error(ctx, fmt.Sprintf("failed to ingest %s", path), err)
			return nil
		}
		in.logger.Info(ctx, fmt.Sprintf("processed %s: %d chunks", d.Name(), n))
		total += n
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("failed to walk documents path: %w", err)
	}

	return total, nil
}

func (in *Ingester) ingestFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	chunks := ChunkText(string(raw), in.chunkSize, in.chunkOverlap)
	for i, chunk := range chunks {
		vec, err := in.embedder.EmbedText(ctx, chunk)
		if err != nil {
			return i, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		metadata := map[string]interface{}{
			"source":       path,
			"filename":     filepath.Base(path),
			"chunk_id":     i,
			"total_chunks": len(chunks),
		}
		if err := in.store.Insert(ctx, chunk, metadata, vec); err != nil {
			return i, err
		}
	}
	return len(chunks), nil
}
