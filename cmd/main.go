package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	completionopenai "github.com/reelworthy/ragchat/internal/completion/openai"
	"github.com/reelworthy/ragchat/internal/config"
	"github.com/reelworthy/ragchat/internal/domain"
	embeddingopenai "github.com/reelworthy/ragchat/internal/embedding/openai"
	"github.com/reelworthy/ragchat/internal/httpserver"
	"github.com/reelworthy/ragchat/internal/httpserver/middleware"
	"github.com/reelworthy/ragchat/internal/observability"
	redisstore "github.com/reelworthy/ragchat/internal/store/redis"
)

const (
	documentKeyPrefix = "doc:"
	cacheKeyPrefix    = "cache:"

	shutdownTimeout = 10 * time.Second
)

func main() {
	container := buildContainer()

	// Force logger initialization before anything else logs.
	if err := container.Invoke(func(_ *zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := container.Invoke(run); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func run(server *httpserver.Server, client *goredis.Client) error {
	logger := observability.FromContext(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutdown signal received", observability.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", observability.Error(err))
	}

	if err := client.Close(); err != nil {
		logger.Error("failed to close redis client", observability.Error(err))
	}

	return nil
}

func buildContainer() *dig.Container {
	container := dig.New()

	providers := []any{
		// Configuration
		config.Load,
		config.ParseDependenciesConfig,

		// Observability
		observability.InitLogger,

		// Shared clients (created once, reused across requests)
		redisstore.NewClient,
		func(cfg *config.Config) (*embeddingopenai.Generator, error) {
			return embeddingopenai.NewGenerator(cfg.Embeddings)
		},
		func(cfg *config.Config) (*completionopenai.Generator, error) {
			return completionopenai.NewGenerator(cfg.Completions)
		},

		// Domain services
		buildServices,

		// HTTP layer
		middleware.BuildMiddlewareChain,
		httpserver.NewHandler,
		httpserver.NewServer,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			log.Fatalf("Failed to provide dependency: %v", err)
		}
	}

	return container
}

// services bundles the domain layer for dig.
type services struct {
	dig.Out

	Chat   *domain.ChatService
	Health *domain.HealthService
}

func buildServices(
	cfg *config.Config,
	client *goredis.Client,
	embedder *embeddingopenai.Generator,
	completer *completionopenai.Generator,
) (services, error) {
	documents, err := redisstore.NewVectorStore(
		client, cfg.Redis.DocumentIndex, documentKeyPrefix, embedder.Dimension(), 0)
	if err != nil {
		return services{}, fmt.Errorf("failed to create document store: %w", err)
	}

	cacheStore, err := redisstore.NewVectorStore(
		client, cfg.Redis.CacheIndex, cacheKeyPrefix, embedder.Dimension(),
		time.Duration(cfg.App.CacheTTL)*time.Second)
	if err != nil {
		return services{}, fmt.Errorf("failed to create cache store: %w", err)
	}

	cache := domain.NewSemanticCacheService(cacheStore, cfg.App.CacheSimilarityThreshold)

	chat := domain.NewChatService(embedder, completer, documents, cacheStore, cache,
		domain.ChatConfig{
			MaxSearchResults:   cfg.App.MaxSearchResults,
			MinSimilarityScore: cfg.App.MinSimilarityScore,
			ChatHistoryLimit:   cfg.App.ChatHistoryLimit,
		})

	health := domain.NewHealthService(cfg.Redis.Addr, map[string]domain.VectorStore{
		"documents": documents,
		"cache":     cacheStore,
	})

	return services{
		Out:    dig.Out{},
		Chat:   chat,
		Health: health,
	}, nil
}
