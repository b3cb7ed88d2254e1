// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is populated from environment variables, with an optional .env file
// loaded first. Every knob has a working default so the demo runs with no
// environment at all.
type Config struct {
	AppName    string `env:"APP_NAME" env-default:"dealerdesk"`
	Port       int    `env:"PORT" env-default:"8080"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs bool   `env:"PRETTY_LOGS" env-default:"false"`

	HTTPReadTimeoutSeconds  int      `env:"HTTP_READ_TIMEOUT_SECONDS" env-default:"15"`
	HTTPWriteTimeoutSeconds int      `env:"HTTP_WRITE_TIMEOUT_SECONDS" env-default:"30"`
	AllowOrigins            []string `env:"HTTP_ALLOW_ORIGINS" env-default:"*"`

	// RandomSeed of zero keeps the interactive non-reproducible behavior;
	// any other value makes dataset, embeddings and delays deterministic.
	RandomSeed int64 `env:"RANDOM_SEED" env-default:"0"`

	DealerCount    int `env:"DEALER_COUNT" env-default:"50"`
	InventoryCount int `env:"INVENTORY_COUNT" env-default:"300"`
	ClaimCount     int `env:"CLAIM_COUNT" env-default:"100"`
	SalesCount     int `env:"SALES_COUNT" env-default:"1000"`

	DelayMinMs          int     `env:"DELAY_MIN_MS" env-default:"1000"`
	DelayMaxMs          int     `env:"DELAY_MAX_MS" env-default:"3000"`
	VectorSearchEnabled bool    `env:"VECTOR_SEARCH_ENABLED" env-default:"true"`
	SimilarityThreshold float64 `env:"SIMILARITY_THRESHOLD" env-default:"0.3"`
	SearchLimit         int     `env:"SEARCH_LIMIT" env-default:"3"`

	AnalyticsCapacity int `env:"ANALYTICS_CAPACITY" env-default:"1000"`

	// KnowledgeDir, when set, is watched for .txt/.md files to ingest into
	// the vector store at runtime.
	KnowledgeDir string `env:"KNOWLEDGE_DIR" env-default:""`
}

// Load reads .env (when present) and binds the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}
