package openai

// Config contains OpenAI completion generator configuration.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Model      string `env:"OPENAI_COMPLETIONS_MODEL" envDefault:"gpt-4o"`
	Timeout    int    `env:"OPENAI_TIMEOUT"           envDefault:"60"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES"       envDefault:"3"`
}
