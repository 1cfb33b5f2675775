package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/observability"
)

const (
	messageMaxLen  = 5000
	resultLimitMin = 1
	resultLimitMax = 20

	defaultResultLimit = 5
)

// chatRequest is the inbound chat payload. Pointer fields distinguish
// absent values from zero values so defaults can apply.
type chatRequest struct {
	Message    string `json:"message"`
	UseCache   *bool  `json:"use_cache"`
	NumResults *int   `json:"num_results"`
}

// chatResponse is the outbound chat payload. Sources are omitted when empty.
type chatResponse struct {
	Response  string                     `json:"response"`
	FromCache bool                       `json:"from_cache"`
	Sources   []domain.RetrievedDocument `json:"sources,omitempty"`
}

// errorResponse is the stable error payload.
type errorResponse struct {
	Error     string           `json:"error"`
	ErrorCode domain.ErrorCode `json:"error_code"`
	Context   map[string]any   `json:"context,omitempty"`
}

// healthResponse is the health check payload.
type healthResponse struct {
	Status     string          `json:"status"`
	Database   string          `json:"database"`
	Containers map[string]bool `json:"containers"`
	Timestamp  string          `json:"timestamp"`
}

// Handler handles HTTP requests.
type Handler struct {
	chat   *domain.ChatService
	health *domain.HealthService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(chat *domain.ChatService, health *domain.HealthService) *Handler {
	return &Handler{
		chat:   chat,
		health: health,
	}
}

// HandleChat processes chat requests.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.WrapError(domain.CodeInvalidRequest, "invalid request body", err))
		return
	}

	query, err := req.toQuery()
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Info("chat request received",
		observability.Int("message_length", len(query.Message)),
		observability.Bool("use_cache", query.UseCache),
		observability.Int("result_limit", query.ResultLimit))

	result, err := h.chat.Chat(ctx, query)
	if err != nil {
		logger.Error("chat request failed", observability.Error(err))
		writeError(w, err)
		return
	}

	logger.Info("chat request succeeded",
		observability.Bool("from_cache", result.FromCache),
		observability.Int("sources", len(result.Sources)))

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  result.Response,
		FromCache: result.FromCache,
		Sources:   result.Sources,
	})
}

// HandleHealth reports backing store connectivity.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report := h.health.Check(r.Context())

	writeJSON(w, http.StatusOK, healthResponse{
		Status:     report.Status,
		Database:   report.Database,
		Containers: report.Containers,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleRoot serves API information.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/v1/" && r.URL.Path != "/api/v1" {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "RAG Chat API - v1",
		"endpoints": map[string]string{
			"chat":   "POST /api/v1/chat - Send a chat message",
			"health": "GET /api/v1/health - Health check",
		},
	})
}

// toQuery validates the payload and applies defaults. The message bound
// counts characters, not bytes.
func (r *chatRequest) toQuery() (domain.Query, error) {
	if r.Message == "" || utf8.RuneCountInString(r.Message) > messageMaxLen {
		return domain.Query{}, domain.NewError(domain.CodeInvalidRequest,
			"message must be between 1 and 5000 characters")
	}

	useCache := true
	if r.UseCache != nil {
		useCache = *r.UseCache
	}

	numResults := defaultResultLimit
	if r.NumResults != nil {
		numResults = *r.NumResults
		if numResults < resultLimitMin || numResults > resultLimitMax {
			return domain.Query{}, domain.NewError(domain.CodeInvalidRequest,
				"num_results must be between 1 and 20").
				WithContext("num_results", numResults)
		}
	}

	return domain.Query{
		Message:     r.Message,
		UseCache:    useCache,
		ResultLimit: numResults,
	}, nil
}

// writeError maps any error to its stable status/kind pair. Unclassified
// errors are reported generically without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:     "internal server error",
			ErrorCode: domain.CodeInternal,
			Context:   nil,
		})
		return
	}

	writeJSON(w, appErr.HTTPStatus(), errorResponse{
		Error:     appErr.Message,
		ErrorCode: appErr.Code,
		Context:   appErr.Context,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(context.Background()).Error("failed to encode response",
			observability.Error(err))
		return
	}
}
