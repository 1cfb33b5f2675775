package domain

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/reelworthy/ragchat/internal/observability"
)

// Field names of persisted cache entries.
const (
	fieldPrompt           = "prompt"
	fieldCompletion       = "completion"
	fieldModel            = "model"
	fieldPromptTokens     = "prompt_tokens"
	fieldCompletionTokens = "completion_tokens"
	fieldTotalTokens      = "total_tokens"
	fieldSourcesCount     = "sources_count"
)

// cachedModelFallback is reported when a stored entry predates model tracking.
const cachedModelFallback = "cached-model"

// SemanticCacheService implements the semantic cache policy over a vector
// store: a query hits only when its embedding is strictly closer to a stored
// prompt than the configured threshold.
type SemanticCacheService struct {
	store     VectorStore
	threshold float64
}

// NewSemanticCacheService creates a new semantic cache service.
func NewSemanticCacheService(store VectorStore, threshold float64) *SemanticCacheService {
	return &SemanticCacheService{
		store:     store,
		threshold: threshold,
	}
}

// Lookup checks the cache for a near-identical prior prompt. Only the single
// nearest neighbor is considered. Any failure during lookup, including
// malformed stored entries, degrades to ErrCacheMiss and never surfaces.
func (s *SemanticCacheService) Lookup(ctx context.Context, embedding []float64) (*CachedAnswer, error) {
	logger := observability.FromContext(ctx)

	if len(embedding) == 0 {
		return nil, errors.New("embedding cannot be empty")
	}

	hits, err := s.store.SimilaritySearch(ctx, embedding, s.threshold, 1)
	if err != nil {
		logger.Warn("cache lookup failed, treating as miss",
			observability.Error(err),
			observability.Float64("threshold", s.threshold))
		return nil, ErrCacheMiss
	}

	if len(hits) == 0 {
		logger.Info("cache miss",
			observability.Float64("threshold", s.threshold))
		return nil, ErrCacheMiss
	}

	hit := hits[0]

	completion, ok := hit.Record.Fields[fieldCompletion]
	if !ok || completion == "" {
		logger.Warn("cached entry is malformed, treating as miss",
			observability.String("cache_key", hit.Record.ID))
		return nil, ErrCacheMiss
	}

	logger.Info("cache hit",
		observability.Float64("similarity", hit.Score),
		observability.String("cache_key", hit.Record.ID))

	model := hit.Record.Fields[fieldModel]
	if model == "" {
		model = cachedModelFallback
	}

	return &CachedAnswer{
		Result: &CompletionResult{
			Content: completion,
			Model:   model,
			Usage: Usage{
				PromptTokens:     intField(hit.Record.Fields, fieldPromptTokens),
				CompletionTokens: intField(hit.Record.Fields, fieldCompletionTokens),
				TotalTokens:      intField(hit.Record.Fields, fieldTotalTokens),
			},
		},
		Similarity: hit.Score,
	}, nil
}

// Store persists a completion keyed by a freshly generated unique id.
func (s *SemanticCacheService) Store(
	ctx context.Context,
	prompt string,
	embedding []float64,
	result *CompletionResult,
	sourcesCount int,
) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	entry := CacheEntry{
		ID:               uuid.NewString(),
		Prompt:           prompt,
		Embedding:        embedding,
		Completion:       result.Content,
		Model:            result.Model,
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		TotalTokens:      result.Usage.TotalTokens,
		SourcesCount:     sourcesCount,
	}

	if err := s.store.Upsert(ctx, entry.record()); err != nil {
		return err
	}

	observability.FromContext(ctx).Info("cached completion",
		observability.String("cache_key", entry.ID),
		observability.Int("total_tokens", entry.TotalTokens))
	return nil
}

// record converts the entry to its generic store representation.
func (e CacheEntry) record() Record {
	return Record{
		ID: e.ID,
		Fields: map[string]string{
			fieldPrompt:           e.Prompt,
			fieldCompletion:       e.Completion,
			fieldModel:            e.Model,
			fieldPromptTokens:     strconv.Itoa(e.PromptTokens),
			fieldCompletionTokens: strconv.Itoa(e.CompletionTokens),
			fieldTotalTokens:      strconv.Itoa(e.TotalTokens),
			fieldSourcesCount:     strconv.Itoa(e.SourcesCount),
		},
		Embedding: e.Embedding,
	}
}

// intField parses a numeric field, defaulting to zero when absent or invalid.
func intField(fields map[string]string, key string) int {
	value, err := strconv.Atoi(fields[key])
	if err != nil {
		return 0
	}
	return value
}
