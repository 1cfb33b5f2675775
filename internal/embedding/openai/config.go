package openai

// Config holds configuration for the OpenAI embedding generator.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Model      string `env:"OPENAI_EMBEDDINGS_MODEL"      envDefault:"text-embedding-3-small"`
	Dimensions int    `env:"OPENAI_EMBEDDINGS_DIMENSIONS" envDefault:"1536"`
	Timeout    int    `env:"OPENAI_TIMEOUT"               envDefault:"60"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES"           envDefault:"3"`
}
