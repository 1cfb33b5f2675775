package domain

// Message roles understood by completion providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Query is a validated chat request.
type Query struct {
	Message     string
	UseCache    bool
	ResultLimit int
}

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// RetrievedDocument is a document returned by vector search, stripped down to
// what the completion prompt and the response payload need.
type RetrievedDocument struct {
	Content         string  `json:"content"`
	Source          string  `json:"source"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Usage tracks token consumption of a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResult is a generated (or cache-reconstructed) completion.
type CompletionResult struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// CacheEntry is one persisted prompt/completion pair with its embedding.
// Entries are never mutated in place; every write creates a new entry.
type CacheEntry struct {
	ID               string
	Prompt           string
	Embedding        []float64
	Completion       string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	SourcesCount     int
}

// CachedAnswer is a completion reconstructed from the semantic cache.
type CachedAnswer struct {
	Result     *CompletionResult
	Similarity float64
}

// Record is a generic vector store record: an id, string fields and the
// attached embedding.
type Record struct {
	ID        string
	Fields    map[string]string
	Embedding []float64
}

// SearchHit is a single similarity search result.
type SearchHit struct {
	Score  float64
	Record Record
}

// ChatResult is the outcome of one chat request.
type ChatResult struct {
	Response  string
	FromCache bool
	Sources   []RetrievedDocument
}

// HealthReport describes backing store connectivity.
type HealthReport struct {
	Status     string          `json:"status"` // healthy, degraded or unhealthy
	Database   string          `json:"database"`
	Containers map[string]bool `json:"containers"`
}

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)
