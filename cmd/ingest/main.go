// Command ingest loads markdown documents into the knowledge database,
// chunking and embedding each file. Run it whenever the source documents
// change; pass -reset to rebuild the index from scratch.
package main

import (
	"context"
	"flag"
	"log"

	"voice-assist-server/internal/clients/gemini"
	"voice-assist-server/internal/config"
	"voice-assist-server/internal/ingest"
	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/rag"
)

func main() {
	docsDir := flag.String("docs", "./docs", "directory of markdown documents to ingest")
	reset := flag.Bool("reset", false, "truncate the knowledge table before ingesting")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}
	logger := observability.NewLogger()

	embedder, err := gemini.NewClient(ctx, cfg.Gemini, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize gemini client", err)
	}
	defer embedder.Close()

	store, err := rag.NewKnowledgeStore(cfg.Knowledge.DatabaseURL, cfg.Knowledge.Table, embedder, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to open knowledge store", err)
	}
	defer store.Close()

	if *reset {
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal(ctx, "failed to ensure schema", err)
		}
		if err := store.Reset(ctx); err != nil {
			logger.Fatal(ctx, "failed to reset knowledge table", err)
		}
		logger.Info(ctx, "knowledge table reset")
	}

	ingester := ingest.NewIngester(store, embedder, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, logger)
	ingested, err := ingester.IngestDirectory(ctx, *docsDir)
	if err != nil {
		logger.Fatal(ctx, "ingestion failed", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		logger.Fatal(ctx, "failed to count chunks", err)
	}
	logger.Info(ctx, "ingestion complete",
		observability.Field{Key: "chunks_ingested", Value: ingested},
		observability.Field{Key: "chunks_total", Value: total})
}
