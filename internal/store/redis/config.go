package redis

// Config contains Redis connection and index settings.
type Config struct {
	Addr              string `env:"REDIS_ADDR"                envDefault:"localhost:6379"`
	Password          string `env:"REDIS_PASSWORD"`
	DB                int    `env:"REDIS_DB"                  envDefault:"0"`
	DocumentIndex     string `env:"REDIS_DOCUMENT_INDEX"      envDefault:"idx:documents"`
	CacheIndex        string `env:"REDIS_CACHE_INDEX"         envDefault:"idx:cache"`
	ConnectTimeout    int    `env:"REDIS_CONNECT_TIMEOUT"     envDefault:"30"` // seconds
	MaxConnectRetries int    `env:"REDIS_MAX_CONNECT_RETRIES" envDefault:"3"`
}
