package domain

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/reelworthy/ragchat/internal/observability"
)

const (
	// Message length bounds after trimming.
	messageMinLen = 1
	messageMaxLen = 5000

	// defaultResultLimit is used when the caller does not bound retrieval.
	defaultResultLimit = 5
)

// Field names of retrieved document records.
const (
	fieldText    = "text"
	fieldContent = "content"
	fieldSource  = "source"
)

// ChatConfig carries the tunables the orchestrator needs.
type ChatConfig struct {
	MaxSearchResults   int
	MinSimilarityScore float64
	ChatHistoryLimit   int
}

// ChatService orchestrates the retrieval-augmented chat pipeline:
// embedding, semantic cache lookup, document retrieval, context assembly,
// completion and the response-caching write path.
type ChatService struct {
	embedder   EmbeddingGenerator
	completer  CompletionGenerator
	documents  VectorStore
	cacheStore VectorStore
	cache      SemanticCache
	cfg        ChatConfig
}

// NewChatService creates a new chat orchestrator.
func NewChatService(
	embedder EmbeddingGenerator,
	completer CompletionGenerator,
	documents VectorStore,
	cacheStore VectorStore,
	cache SemanticCache,
	cfg ChatConfig,
) *ChatService {
	return &ChatService{
		embedder:   embedder,
		completer:  completer,
		documents:  documents,
		cacheStore: cacheStore,
		cache:      cache,
		cfg:        cfg,
	}
}

// Chat handles one chat request. Validation errors reject the request before
// any provider call. Embedding and completion failures are fatal; retrieval,
// history and cache failures degrade gracefully.
func (s *ChatService) Chat(ctx context.Context, query Query) (*ChatResult, error) {
	logger := observability.FromContext(ctx)

	message, err := validateMessage(query.Message)
	if err != nil {
		return nil, err
	}
	limit := s.clampResultLimit(query.ResultLimit)

	embedding, err := s.embedder.Generate(ctx, message)
	if err != nil {
		logger.Error("embedding generation failed", observability.Error(err))
		return nil, WrapError(CodeEmbeddingFailed, "failed to generate embedding", err)
	}
	logger.Info("embedding generated",
		observability.Int("embedding_dimension", len(embedding)))

	if query.UseCache {
		answer, lookupErr := s.cache.Lookup(ctx, embedding)
		if lookupErr != nil && !errors.Is(lookupErr, ErrCacheMiss) {
			logger.Warn("cache lookup failed, continuing without cache",
				observability.Error(lookupErr))
		}
		if answer != nil {
			// The cache does not retain retrieval provenance, so hits
			// carry no sources.
			return &ChatResult{
				Response:  answer.Result.Content,
				FromCache: true,
				Sources:   nil,
			}, nil
		}
	}

	docs := s.retrieveDocuments(ctx, embedding, limit)
	history := s.chatHistory(ctx)

	messages := buildMessages(history, message, docs)

	result, err := s.completer.Complete(ctx, messages)
	if err != nil {
		logger.Error("completion generation failed", observability.Error(err))
		return nil, WrapError(CodeCompletionFailed, "failed to generate completion", err)
	}
	logger.Info("completion generated",
		observability.String("model", result.Model),
		observability.Int("total_tokens", result.Usage.TotalTokens))

	// Best effort: a failed cache write must not fail the response already
	// computed.
	if storeErr := s.cache.Store(ctx, message, embedding, result, len(docs)); storeErr != nil {
		logger.Warn("failed to cache response", observability.Error(storeErr))
	}

	return &ChatResult{
		Response:  result.Content,
		FromCache: false,
		Sources:   docs,
	}, nil
}

// retrieveDocuments runs similarity search against the document store.
// Failures degrade to an empty result so generation can proceed without
// retrieved context.
func (s *ChatService) retrieveDocuments(ctx context.Context, embedding []float64, limit int) []RetrievedDocument {
	logger := observability.FromContext(ctx)

	hits, err := s.documents.SimilaritySearch(ctx, embedding, s.cfg.MinSimilarityScore, limit)
	if err != nil {
		logger.Warn("document retrieval failed, continuing without context",
			observability.Error(err))
		return nil
	}

	docs := make([]RetrievedDocument, 0, len(hits))
	for _, hit := range hits {
		content := hit.Record.Fields[fieldText]
		if content == "" {
			content = hit.Record.Fields[fieldContent]
		}

		source := hit.Record.Fields[fieldSource]
		if source == "" {
			source = "unknown"
		}

		docs = append(docs, RetrievedDocument{
			Content:         content,
			Source:          source,
			SimilarityScore: hit.Score,
		})
	}

	logger.Info("documents retrieved", observability.Int("count", len(docs)))
	return docs
}

// chatHistory converts the most recent cache entries into conversation turns,
// oldest first. Failures degrade to an empty history.
func (s *ChatService) chatHistory(ctx context.Context) []Message {
	logger := observability.FromContext(ctx)

	records, err := s.cacheStore.Recent(ctx, s.cfg.ChatHistoryLimit)
	if err != nil {
		logger.Warn("failed to fetch chat history, continuing without it",
			observability.Error(err))
		return nil
	}

	history := make([]Message, 0, len(records)*2)
	for i := len(records) - 1; i >= 0; i-- { // newest-first storage order, reversed
		prompt := records[i].Fields[fieldPrompt]
		completion := records[i].Fields[fieldCompletion]
		if prompt == "" || completion == "" {
			continue
		}

		history = append(history,
			Message{Role: RoleUser, Content: prompt},
			Message{Role: RoleAssistant, Content: completion},
		)
	}

	return history
}

// clampResultLimit bounds the retrieval limit to the configured maximum.
func (s *ChatService) clampResultLimit(limit int) int {
	if limit < 1 {
		limit = defaultResultLimit
	}
	if limit > s.cfg.MaxSearchResults {
		return s.cfg.MaxSearchResults
	}
	return limit
}

// validateMessage trims and bounds-checks the user message. Bounds count
// characters, not bytes, so multibyte text is not penalized.
func validateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)

	length := utf8.RuneCountInString(message)
	if length < messageMinLen {
		return "", NewError(CodeInvalidRequest, "message cannot be empty")
	}

	if length > messageMaxLen {
		return "", NewError(CodeInvalidRequest, "message is too long").
			WithContext("max_length", messageMaxLen).
			WithContext("length", length)
	}

	return message, nil
}
