package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/mocks"
)

type chatFixture struct {
	embedder   *mocks.MockEmbeddingGenerator
	completer  *mocks.MockCompletionGenerator
	documents  *mocks.MockVectorStore
	cacheStore *mocks.MockVectorStore
	cache      *mocks.MockSemanticCache
	service    *domain.ChatService
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	f := &chatFixture{
		embedder:   mocks.NewMockEmbeddingGenerator(t),
		completer:  mocks.NewMockCompletionGenerator(t),
		documents:  mocks.NewMockVectorStore(t),
		cacheStore: mocks.NewMockVectorStore(t),
		cache:      mocks.NewMockSemanticCache(t),
		service:    nil,
	}

	f.service = domain.NewChatService(f.embedder, f.completer, f.documents, f.cacheStore, f.cache,
		domain.ChatConfig{
			MaxSearchResults:   20,
			MinSimilarityScore: 0.02,
			ChatHistoryLimit:   3,
		})

	return f
}

func TestChatService_Chat_CacheHit(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.1, 0.2, 0.3}
	f.embedder.EXPECT().
		Generate(mock.Anything, "What are good 90s action movies?").
		Return(embedding, nil)

	f.cache.EXPECT().
		Lookup(mock.Anything, embedding).
		Return(&domain.CachedAnswer{
			Result: &domain.CompletionResult{
				Content: "Die Hard, Terminator 2, The Matrix",
				Model:   "gpt-4o",
				Usage:   domain.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
			},
			Similarity: 0.995,
		}, nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "What are good 90s action movies?",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.True(t, result.FromCache)
	require.Equal(t, "Die Hard, Terminator 2, The Matrix", result.Response)
	require.Empty(t, result.Sources)
	f.completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestChatService_Chat_CacheMiss_FullPipeline(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.1, 0.2, 0.3}
	f.embedder.EXPECT().
		Generate(mock.Anything, "What are good 90s action movies?").
		Return(embedding, nil)

	f.cache.EXPECT().
		Lookup(mock.Anything, embedding).
		Return(nil, domain.ErrCacheMiss)

	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return([]domain.SearchHit{
			{
				Score:  0.91,
				Record: domain.Record{ID: "m1", Fields: map[string]string{"text": "Die Hard (1988)", "source": "movies.csv"}},
			},
			{
				Score:  0.87,
				Record: domain.Record{ID: "m2", Fields: map[string]string{"content": "Terminator 2 (1991)"}},
			},
		}, nil)

	f.cacheStore.EXPECT().
		Recent(mock.Anything, 3).
		Return([]domain.Record{
			{ID: "c1", Fields: map[string]string{"prompt": "Any comedies?", "completion": "Try Groundhog Day."}},
		}, nil)

	var captured []domain.Message
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, messages []domain.Message) {
			captured = messages
		}).
		Return(&domain.CompletionResult{
			Content: "Here are three: Die Hard, Terminator 2, Speed",
			Model:   "gpt-4o",
			Usage:   domain.Usage{PromptTokens: 50, CompletionTokens: 25, TotalTokens: 75},
		}, nil)

	f.cache.EXPECT().
		Store(mock.Anything, "What are good 90s action movies?", embedding, mock.Anything, 2).
		Return(nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "What are good 90s action movies?",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.False(t, result.FromCache)
	require.Equal(t, "Here are three: Die Hard, Terminator 2, Speed", result.Response)
	require.Len(t, result.Sources, 2)

	// Field mapping: prefer "text", fall back to "content", default source.
	require.Equal(t, "Die Hard (1988)", result.Sources[0].Content)
	require.Equal(t, "movies.csv", result.Sources[0].Source)
	require.InEpsilon(t, 0.91, result.Sources[0].SimilarityScore, 0.001)
	require.Equal(t, "Terminator 2 (1991)", result.Sources[1].Content)
	require.Equal(t, "unknown", result.Sources[1].Source)

	// Message assembly: system, history pair, user message, context block.
	require.Len(t, captured, 5)
	require.Equal(t, domain.RoleSystem, captured[0].Role)
	require.Equal(t, domain.RoleUser, captured[1].Role)
	require.Equal(t, "Any comedies?", captured[1].Content)
	require.Equal(t, domain.RoleAssistant, captured[2].Role)
	require.Equal(t, "Try Groundhog Day.", captured[2].Content)
	require.Equal(t, domain.RoleUser, captured[3].Role)
	require.Equal(t, "What are good 90s action movies?", captured[3].Content)
	require.Equal(t, domain.RoleSystem, captured[4].Role)
	require.Contains(t, captured[4].Content, "Die Hard (1988)")
	require.Contains(t, captured[4].Content, "Terminator 2 (1991)")
}

func TestChatService_Chat_CacheDisabled_SkipsLookup(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5, 0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "hello", embedding, mock.Anything, 0).
		Return(nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    false,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.False(t, result.FromCache)
	f.cache.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestChatService_Chat_EmptyMessage_RejectedBeforeProviders(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "   ",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.Nil(t, result)
	require.Equal(t, domain.CodeInvalidRequest, domain.CodeOf(err))
	f.embedder.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestChatService_Chat_MessageTooLong(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     strings.Repeat("a", 5001),
		UseCache:    true,
		ResultLimit: 5,
	})

	require.Nil(t, result)
	require.Equal(t, domain.CodeInvalidRequest, domain.CodeOf(err))
	f.embedder.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestChatService_Chat_MultibyteMessageWithinBounds(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	// 2000 characters but 6000 bytes; the length bound counts characters.
	message := strings.Repeat("映", 2000)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, message).Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, message, embedding, mock.Anything, 0).
		Return(nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     message,
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.Equal(t, "hi", result.Response)
}

func TestChatService_Chat_MultibyteMessageTooLong(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     strings.Repeat("映", 5001),
		UseCache:    true,
		ResultLimit: 5,
	})

	require.Nil(t, result)
	require.Equal(t, domain.CodeInvalidRequest, domain.CodeOf(err))
	f.embedder.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestChatService_Chat_EmbeddingFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	f.embedder.EXPECT().
		Generate(mock.Anything, "hello").
		Return(nil, errors.New("provider unavailable"))

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.Nil(t, result)
	require.Equal(t, domain.CodeEmbeddingFailed, domain.CodeOf(err))
}

func TestChatService_Chat_CompletionFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(nil, errors.New("model overloaded"))

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.Nil(t, result)
	require.Equal(t, domain.CodeCompletionFailed, domain.CodeOf(err))
	f.cache.AssertNotCalled(t, "Store",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChatService_Chat_ResultLimitClamped(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)

	// 1000 requested, configured maximum is 20.
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 20).
		Return(nil, nil)
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "hello", embedding, mock.Anything, 0).
		Return(nil)

	_, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 1000,
	})
	require.NoError(t, err)
}

func TestChatService_Chat_RetrievalFailureDegrades(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, errors.New("index offline"))
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)

	var captured []domain.Message
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, messages []domain.Message) {
			captured = messages
		}).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "hello", embedding, mock.Anything, 0).
		Return(nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.Empty(t, result.Sources)

	// No context block without retrieved documents: system + user only.
	require.Len(t, captured, 2)
	require.Equal(t, domain.RoleSystem, captured[0].Role)
	require.Equal(t, domain.RoleUser, captured[1].Role)
}

func TestChatService_Chat_HistoryFailureDegrades(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)
	f.cacheStore.EXPECT().
		Recent(mock.Anything, 3).
		Return(nil, errors.New("query failed"))
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "hello", embedding, mock.Anything, 0).
		Return(nil)

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.False(t, result.FromCache)
}

func TestChatService_Chat_CacheWriteFailureIgnored(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "hello").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)
	f.cacheStore.EXPECT().Recent(mock.Anything, 3).Return(nil, nil)
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(&domain.CompletionResult{Content: "hi", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "hello", embedding, mock.Anything, 0).
		Return(errors.New("write failed"))

	result, err := f.service.Chat(ctx, domain.Query{
		Message:     "hello",
		UseCache:    true,
		ResultLimit: 5,
	})

	require.NoError(t, err)
	require.Equal(t, "hi", result.Response)
}

func TestChatService_Chat_HistoryOrderedOldestFirst(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t)

	embedding := []float64{0.5}
	f.embedder.EXPECT().Generate(mock.Anything, "third question").Return(embedding, nil)
	f.cache.EXPECT().Lookup(mock.Anything, embedding).Return(nil, domain.ErrCacheMiss)
	f.documents.EXPECT().
		SimilaritySearch(mock.Anything, embedding, 0.02, 5).
		Return(nil, nil)

	// Storage order is newest first; assembly must reverse it.
	f.cacheStore.EXPECT().
		Recent(mock.Anything, 3).
		Return([]domain.Record{
			{ID: "c2", Fields: map[string]string{"prompt": "second", "completion": "answer two"}},
			{ID: "c1", Fields: map[string]string{"prompt": "first", "completion": "answer one"}},
		}, nil)

	var captured []domain.Message
	f.completer.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, messages []domain.Message) {
			captured = messages
		}).
		Return(&domain.CompletionResult{Content: "three", Model: "gpt-4o", Usage: domain.Usage{}}, nil)
	f.cache.EXPECT().
		Store(mock.Anything, "third question", embedding, mock.Anything, 0).
		Return(nil)

	_, err := f.service.Chat(ctx, domain.Query{
		Message:     "third question",
		UseCache:    true,
		ResultLimit: 5,
	})
	require.NoError(t, err)

	require.Len(t, captured, 6)
	require.Equal(t, "first", captured[1].Content)
	require.Equal(t, "answer one", captured[2].Content)
	require.Equal(t, "second", captured[3].Content)
	require.Equal(t, "answer two", captured[4].Content)
	require.Equal(t, "third question", captured[5].Content)
}
