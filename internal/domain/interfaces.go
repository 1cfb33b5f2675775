package domain

import "context"

// EmbeddingGenerator creates vector embeddings from text.
type EmbeddingGenerator interface {
	// Generate creates a vector embedding from text.
	Generate(ctx context.Context, text string) ([]float64, error)

	// Name returns the generator identifier.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// CompletionGenerator produces chat completions from a message sequence.
type CompletionGenerator interface {
	// Complete generates a completion for the assembled messages.
	Complete(ctx context.Context, messages []Message) (*CompletionResult, error)

	// Model returns the configured completion model name.
	Model() string
}

// VectorStore is the capability-shaped store contract the core depends on.
// Implementations persist records with an attached vector and support
// similarity search plus generic record access.
type VectorStore interface {
	// SimilaritySearch returns up to limit records whose similarity to the
	// embedding is strictly greater than minScore, nearest first.
	SimilaritySearch(ctx context.Context, embedding []float64, minScore float64, limit int) ([]SearchHit, error)

	// Upsert stores a record, replacing any record with the same id.
	Upsert(ctx context.Context, rec Record) error

	// GetByID fetches a record by id. Missing records yield a
	// RESOURCE_NOT_FOUND error.
	GetByID(ctx context.Context, id string) (Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Recent returns up to limit records ordered newest first by storage
	// timestamp.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Ping reports store connectivity.
	Ping(ctx context.Context) error
}

// SemanticCache decides whether a query is similar enough to a stored entry
// to short-circuit generation, and governs cache writes.
type SemanticCache interface {
	// Lookup returns the cached answer for a near-identical prior prompt,
	// or ErrCacheMiss.
	Lookup(ctx context.Context, embedding []float64) (*CachedAnswer, error)

	// Store persists a freshly generated completion for future reuse.
	// Failures are the caller's to log; they must not fail the request.
	Store(ctx context.Context, prompt string, embedding []float64, result *CompletionResult, sourcesCount int) error
}
