package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/mocks"
)

func TestSemanticCacheService_Lookup(t *testing.T) {
	ctx := context.Background()
	embedding := []float64{0.1, 0.2, 0.3}

	t.Run("hit reconstructs completion", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			SimilaritySearch(mock.Anything, embedding, 0.99, 1).
			Return([]domain.SearchHit{
				{
					Score: 0.997,
					Record: domain.Record{
						ID: "cache:abc",
						Fields: map[string]string{
							"prompt":            "what movies star tom hanks",
							"completion":        "Forrest Gump, Cast Away, Big",
							"model":             "gpt-4o",
							"prompt_tokens":     "42",
							"completion_tokens": "17",
							"total_tokens":      "59",
						},
					},
				},
			}, nil)

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, embedding)

		require.NoError(t, err)
		require.Equal(t, "Forrest Gump, Cast Away, Big", answer.Result.Content)
		require.Equal(t, "gpt-4o", answer.Result.Model)
		require.Equal(t, 42, answer.Result.Usage.PromptTokens)
		require.Equal(t, 17, answer.Result.Usage.CompletionTokens)
		require.Equal(t, 59, answer.Result.Usage.TotalTokens)
		require.InEpsilon(t, 0.997, answer.Similarity, 0.0001)
	})

	t.Run("no neighbors above threshold is a miss", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			SimilaritySearch(mock.Anything, embedding, 0.99, 1).
			Return(nil, nil)

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, embedding)

		require.Nil(t, answer)
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("search failure degrades to miss", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			SimilaritySearch(mock.Anything, embedding, 0.99, 1).
			Return(nil, errors.New("index offline"))

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, embedding)

		require.Nil(t, answer)
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("malformed entry degrades to miss", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			SimilaritySearch(mock.Anything, embedding, 0.99, 1).
			Return([]domain.SearchHit{
				{
					Score:  0.999,
					Record: domain.Record{ID: "cache:broken", Fields: map[string]string{"prompt": "orphaned"}},
				},
			}, nil)

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, embedding)

		require.Nil(t, answer)
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("missing model falls back", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			SimilaritySearch(mock.Anything, embedding, 0.99, 1).
			Return([]domain.SearchHit{
				{
					Score:  0.999,
					Record: domain.Record{ID: "cache:old", Fields: map[string]string{"completion": "an answer"}},
				},
			}, nil)

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, embedding)

		require.NoError(t, err)
		require.Equal(t, "cached-model", answer.Result.Model)
		require.Zero(t, answer.Result.Usage.TotalTokens)
	})

	t.Run("empty embedding is rejected", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)

		cache := domain.NewSemanticCacheService(store, 0.99)
		answer, err := cache.Lookup(ctx, nil)

		require.Nil(t, answer)
		require.Error(t, err)
		store.AssertNotCalled(t, "SimilaritySearch",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSemanticCacheService_Store(t *testing.T) {
	ctx := context.Background()
	embedding := []float64{0.1, 0.2, 0.3}
	result := &domain.CompletionResult{
		Content: "Forrest Gump, Cast Away, Big",
		Model:   "gpt-4o",
		Usage:   domain.Usage{PromptTokens: 42, CompletionTokens: 17, TotalTokens: 59},
	}

	t.Run("persists full record with generated id", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)

		var stored domain.Record
		store.EXPECT().
			Upsert(mock.Anything, mock.Anything).
			Run(func(_ context.Context, record domain.Record) {
				stored = record
			}).
			Return(nil)

		cache := domain.NewSemanticCacheService(store, 0.99)
		err := cache.Store(ctx, "what movies star tom hanks", embedding, result, 3)

		require.NoError(t, err)
		require.NoError(t, uuid.Validate(stored.ID))
		require.Equal(t, embedding, stored.Embedding)
		require.Equal(t, "what movies star tom hanks", stored.Fields["prompt"])
		require.Equal(t, "Forrest Gump, Cast Away, Big", stored.Fields["completion"])
		require.Equal(t, "gpt-4o", stored.Fields["model"])
		require.Equal(t, "42", stored.Fields["prompt_tokens"])
		require.Equal(t, "17", stored.Fields["completion_tokens"])
		require.Equal(t, "59", stored.Fields["total_tokens"])
		require.Equal(t, "3", stored.Fields["sources_count"])
	})

	t.Run("write failure is returned", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)
		store.EXPECT().
			Upsert(mock.Anything, mock.Anything).
			Return(errors.New("connection reset"))

		cache := domain.NewSemanticCacheService(store, 0.99)
		err := cache.Store(ctx, "prompt", embedding, result, 0)

		require.Error(t, err)
	})

	t.Run("nil result is rejected", func(t *testing.T) {
		store := mocks.NewMockVectorStore(t)

		cache := domain.NewSemanticCacheService(store, 0.99)
		err := cache.Store(ctx, "prompt", embedding, nil, 0)

		require.Error(t, err)
		store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
