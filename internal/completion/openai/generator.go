// Package openai provides the completion generator backed by the official
// OpenAI SDK. It converts between domain messages and SDK types.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/observability"
)

const (
	completionTemperature = 0.1
	completionMaxTokens   = 2000
)

// Generator implements domain.CompletionGenerator for OpenAI.
type Generator struct {
	client openai.Client
	model  string
}

// NewGenerator creates a new OpenAI completion generator.
func NewGenerator(config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Generator{
		client: openai.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// Complete generates a completion for the assembled messages.
func (g *Generator) Complete(ctx context.Context, messages []domain.Message) (*domain.CompletionResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("messages cannot be empty")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI chat completions API",
		observability.String("model", g.model),
		observability.Int("messages", len(messages)))

	resp, err := g.client.Chat.Completions.New(ctx, g.toSDKParams(messages))
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return &domain.CompletionResult{
		Content: resp.Choices[0].Message.Content,
		Model:   string(resp.Model),
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Model returns the configured completion model name.
func (g *Generator) Model() string {
	return g.model
}

// toSDKParams converts domain messages to SDK ChatCompletionNewParams
func (g *Generator) toSDKParams(messages []domain.Message) openai.ChatCompletionNewParams {
	sdkMessages := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case domain.RoleUser:
			sdkMessages[i] = openai.UserMessage(msg.Content)
		case domain.RoleAssistant:
			sdkMessages[i] = openai.AssistantMessage(msg.Content)
		case domain.RoleSystem:
			sdkMessages[i] = openai.SystemMessage(msg.Content)
		default:
			// Fallback to user message if role is unknown
			sdkMessages[i] = openai.UserMessage(msg.Content)
		}
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.model),
		Messages:    sdkMessages,
		Temperature: openai.Float(completionTemperature),
		MaxTokens:   openai.Int(completionMaxTokens),
	}
}
