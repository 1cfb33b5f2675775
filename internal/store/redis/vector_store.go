package redis

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reelworthy/ragchat/internal/domain"
	"github.com/reelworthy/ragchat/internal/observability"
)

const (
	redisDialectVersion = 2

	// Reserved hash fields; everything else is caller data.
	fieldEmbedding = "embedding"
	fieldIndexedAt = "indexed_at"
	fieldScore     = "score"
)

// VectorStore implements domain.VectorStore on Redis with a RediSearch
// vector index. Each record is a hash under keyPrefix+id holding the caller's
// string fields plus the binary embedding and a storage timestamp.
type VectorStore struct {
	client    *redis.Client
	indexName string
	keyPrefix string
	dimension int
	ttl       time.Duration
}

// NewVectorStore creates a Redis vector store adapter and ensures its search
// index exists. A non-zero ttl expires records after that duration; zero
// retains them forever.
func NewVectorStore(
	client *redis.Client,
	indexName string,
	keyPrefix string,
	dimension int,
	ttl time.Duration,
) (*VectorStore, error) {
	v := &VectorStore{
		client:    client,
		indexName: indexName,
		keyPrefix: keyPrefix,
		dimension: dimension,
		ttl:       ttl,
	}

	if err := v.createIndex(); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return v, nil
}

// floatsToBytes converts float64 slice to binary byte representation.
func floatsToBytes(fs []float64) []byte {
	const bytesPerFloat32 = 4
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		// Convert float64 to float32 for Redis compatibility
		f32 := float32(f)
		u := math.Float32bits(f32)
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], u)
	}

	return buf
}

// bytesToFloats is the inverse of floatsToBytes.
func bytesToFloats(buf []byte) []float64 {
	const bytesPerFloat32 = 4
	fs := make([]float64, len(buf)/bytesPerFloat32)

	for i := range fs {
		u := binary.LittleEndian.Uint32(buf[i*bytesPerFloat32:])
		fs[i] = float64(math.Float32frombits(u))
	}

	return fs
}

// SimilaritySearch finds records whose cosine similarity to the embedding is
// strictly greater than minScore, nearest first, capped at limit.
func (v *VectorStore) SimilaritySearch(
	ctx context.Context,
	embedding []float64,
	minScore float64,
	limit int,
) ([]domain.SearchHit, error) {
	logger := observability.FromContext(ctx)
	logger.Info("starting vector search",
		observability.String("index", v.indexName),
		observability.Int("embedding_dim", len(embedding)),
		observability.Float64("min_score", minScore),
		observability.Int("limit", limit))

	query := fmt.Sprintf("*=>[KNN %d @%s $vec AS %s]", limit, fieldEmbedding, fieldScore)

	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, query,
		&redis.FTSearchOptions{
			SortBy: []redis.FTSearchSortBy{
				{FieldName: fieldScore, Asc: true},
			},
			LimitOffset:    0,
			Limit:          limit,
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(embedding),
			},
		},
	).Result()
	if err != nil {
		logger.Error("vector search failed", observability.Error(err))
		return nil, domain.WrapError(domain.CodeVectorSearchFailed, "vector search failed", err).
			WithContext("index", v.indexName)
	}

	hits := v.parseSearchHits(results.Docs, minScore)

	logger.Info("vector search completed",
		observability.Int("docs_returned", len(results.Docs)),
		observability.Int("hits_above_floor", len(hits)))

	return hits, nil
}

// parseSearchHits converts raw search documents to hits. Cosine distance
// becomes similarity (1 - distance); the floor filter is strict, so a hit at
// exactly minScore is dropped. Documents with a missing or malformed score
// are skipped.
func (v *VectorStore) parseSearchHits(docs []redis.Document, minScore float64) []domain.SearchHit {
	hits := make([]domain.SearchHit, 0, len(docs))
	for _, doc := range docs {
		scoreStr, ok := doc.Fields[fieldScore]
		if !ok {
			continue
		}

		distance, parseErr := strconv.ParseFloat(scoreStr, 64)
		if parseErr != nil {
			continue
		}

		similarity := 1.0 - distance
		if similarity <= minScore {
			continue
		}

		hits = append(hits, domain.SearchHit{
			Score:  similarity,
			Record: v.recordFromDoc(doc.ID, doc.Fields),
		})
	}

	return hits
}

// Upsert stores a record under keyPrefix+id, replacing any previous record.
func (v *VectorStore) Upsert(ctx context.Context, rec domain.Record) error {
	logger := observability.FromContext(ctx)

	if rec.ID == "" {
		return domain.NewError(domain.CodeInvalidRequest, "record id cannot be empty")
	}

	if len(rec.Embedding) != v.dimension {
		return domain.NewError(domain.CodeInvalidRequest, "embedding dimension mismatch").
			WithContext("expected", v.dimension).
			WithContext("got", len(rec.Embedding))
	}

	key := v.keyPrefix + rec.ID

	values := make([]any, 0, (len(rec.Fields)+2)*2)
	values = append(values,
		fieldEmbedding, floatsToBytes(rec.Embedding),
		fieldIndexedAt, time.Now().Unix(),
	)
	for field, value := range rec.Fields {
		values = append(values, field, value)
	}

	pipe := v.client.Pipeline()
	pipe.HSet(ctx, key, values...)
	if v.ttl > 0 {
		pipe.Expire(ctx, key, v.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("upsert failed",
			observability.String("key", key),
			observability.Error(err))
		return fmt.Errorf("failed to upsert record: %w", err)
	}

	logger.Debug("record upserted", observability.String("key", key))
	return nil
}

// GetByID fetches a single record.
func (v *VectorStore) GetByID(ctx context.Context, id string) (domain.Record, error) {
	key := v.keyPrefix + id

	fields, err := v.client.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to get record: %w", err)
	}

	if len(fields) == 0 {
		return domain.Record{}, domain.NewError(domain.CodeResourceNotFound, "record not found").
			WithContext("id", id)
	}

	rec := v.recordFromDoc(key, fields)
	if raw, ok := fields[fieldEmbedding]; ok {
		rec.Embedding = bytesToFloats([]byte(raw))
	}

	return rec, nil
}

// Delete removes a record. Deleting a missing record is a no-op.
func (v *VectorStore) Delete(ctx context.Context, id string) error {
	if err := v.client.Del(ctx, v.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Recent returns up to limit records ordered newest first by storage
// timestamp.
func (v *VectorStore) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, "*",
		&redis.FTSearchOptions{
			SortBy: []redis.FTSearchSortBy{
				{FieldName: fieldIndexedAt, Desc: true},
			},
			LimitOffset:    0,
			Limit:          limit,
			DialectVersion: redisDialectVersion,
		},
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent records: %w", err)
	}

	records := make([]domain.Record, 0, len(results.Docs))
	for _, doc := range results.Docs {
		records = append(records, v.recordFromDoc(doc.ID, doc.Fields))
	}

	return records, nil
}

// Ping reports store connectivity.
func (v *VectorStore) Ping(ctx context.Context) error {
	if err := v.client.Ping(ctx).Err(); err != nil {
		return domain.WrapError(domain.CodeConnectionFailed, "redis ping failed", err)
	}
	return nil
}

// createIndex creates the search index if it doesn't exist.
func (v *VectorStore) createIndex() error {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	// Check if index already exists
	_, err := v.client.FTInfo(ctx, v.indexName).Result()
	if err == nil {
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", v.indexName))
		return nil
	}

	logger.Info("creating redis search index",
		observability.String("index_name", v.indexName),
		observability.Int("embedding_dimension", v.dimension))

	_, err = v.client.FTCreate(ctx, v.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{v.keyPrefix},
		},
		&redis.FieldSchema{
			FieldName: fieldEmbedding,
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            v.dimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: fieldIndexedAt,
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", v.indexName))

	return nil
}

// recordFromDoc converts hash fields to a domain record, stripping the key
// prefix and the reserved fields.
func (v *VectorStore) recordFromDoc(key string, fields map[string]string) domain.Record {
	data := make(map[string]string, len(fields))
	for field, value := range fields {
		if field == fieldEmbedding || field == fieldIndexedAt || field == fieldScore {
			continue
		}
		data[field] = value
	}

	id := key
	if len(id) >= len(v.keyPrefix) && id[:len(v.keyPrefix)] == v.keyPrefix {
		id = id[len(v.keyPrefix):]
	}

	return domain.Record{
		ID:        id,
		Fields:    data,
		Embedding: nil,
	}
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	var appErr *domain.Error
	return errors.As(err, &appErr) && appErr.Code == domain.CodeResourceNotFound
}
