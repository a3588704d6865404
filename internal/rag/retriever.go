package rag

import (
	"context"
	"encoding/json"
	"fmt"

	"voice-assist-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx stdlib driver for sqlx
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

// Passage is one retrieved knowledge chunk. Lower distance means closer.
type Passage struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
	Distance float64                `json:"distance"`
}

// Retriever returns the top-K passages most similar to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) []Passage
}

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// embeddingDim matches the text-embedding-004 output size.
const embeddingDim = 768

// KnowledgeStore is a pgvector-backed document index. Retrieval failures
// degrade to "no context": the turn continues without passages.
type KnowledgeStore struct {
	db       *sqlx.DB
	table    string
	embedder Embedder
	logger   *observability.Logger
}

// NewKnowledgeStore connects to the vector index
func NewKnowledgeStore(databaseURL, table string, embedder Embedder, logger *observability.Logger) (*KnowledgeStore, error) {
	db, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge database: %w", err)
	}

	return &KnowledgeStore{
		db:       db,
		table:    table,
		embedder: embedder,
		logger:   logger,
	}, nil
}

// Retrieve returns the k closest passages by cosine distance, closest first.
// Any failure returns an empty slice, never an error.
func (s *KnowledgeStore) Retrieve(ctx context.Context, query string, k int) []Passage {
	vec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error(ctx, "failed to embed query", err)
		return []Passage{}
	}

	stmt := fmt.Sprintf(`
		SELECT content, metadata, embedding <=> $1 AS distance
		FROM %s
		ORDER BY embedding <=> $1
		LIMIT $2`, s.table)

	rows, err := s.db.QueryContext(ctx, stmt, pgvector.NewVector(vec), k)
	if err != nil {
		s.logger.Error(ctx, "failed to query knowledge index", err)
		return []Passage{}
	}
	defer rows.Close()

	passages := []Passage{}
	for rows.Next() {
		var (
			content  string
			metaJSON []byte
			distance float64
		)
		if err := rows.Scan(&content, &metaJSON, &distance); err != nil {
			s.logger.Error(ctx, "failed to scan passage row", err)
			return []Passage{}
		}

		metadata := map[string]interface{}{}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &metadata); err != nil {
				s.logger.Warn(ctx, "failed to decode passage metadata", err)
			}
		}

		passages = append(passages, Passage{
			Content:  content,
			Metadata: metadata,
			Distance: distance,
		})
	}
	if err := rows.Err(); err != nil {
		s.logger.Error(ctx, "failed to read passage rows", err)
		return []Passage{}
	}

	s.logger.Debug(ctx, fmt.Sprintf("retrieved %d passages", len(passages)))
	return passages
}

// Count returns the number of indexed document chunks.
func (s *KnowledgeStore) Count(ctx context.Context) (int, error) {
	var count int
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)
	if err := s.db.QueryRowContext(ctx, stmt).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// EnsureSchema creates the pgvector extension, table, and index used by the
// ingestion process.
func (s *KnowledgeStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}',
			embedding VECTOR(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.table, embeddingDim),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_embedding_idx ON %s USING hnsw (embedding vector_cosine_ops)",
			s.table, s.table),
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure knowledge schema: %w", err)
		}
	}
	return nil
}

// Reset drops all indexed chunks.
func (s *KnowledgeStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("TRUNCATE %s", s.table)); err != nil {
		return fmt.Errorf("failed to reset knowledge index: %w", err)
	}
	return nil
}

// Insert stores one embedded chunk with its metadata.
func (s *KnowledgeStore) Insert(ctx context.Context, content string, metadata map[string]interface{}, embedding []float32) error {
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	stmt := fmt.Sprintf("INSERT INTO %s (content, metadata, embedding) VALUES ($1, $2, $3)", s.table)
	if _, err := s.db.ExecContext(ctx, stmt, content, metaJSON, pgvector.NewVector(embedding)); err != nil {
		return fmt.Errorf("failed to insert chunk: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *KnowledgeStore) Close() error {
	return s.db.Close()
}
