package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth
	DocsightAPIKey string

	// Claude provider (optional; rule-based fallbacks run without it)
	AnthropicAPIKey string
	AnthropicModel  string

	// Worker pool
	WorkerCount          int
	MaxQueueSize         int
	MaxConcurrentExtract int

	// Upload limits
	MaxUploadBytes int64

	// Outline classification
	RuleThreshold  float64
	ModelThreshold float64

	// Relevance scoring
	SemanticWeight   float64
	KeywordWeight    float64
	StructuralWeight float64
	QualityWeight    float64

	// Diversity re-rank
	DiversityMaxPerDoc  int
	DiversityPenaltyPct float64
	DiversityMaxPenalty float64

	// Section extraction
	MinPageChars       int
	MinSubsectionChars int
	MaxSubsections     int

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocsightAPIKey: os.Getenv("DOCSIGHT_API_KEY"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),

		WorkerCount:          envInt("WORKER_COUNT", 4),
		MaxQueueSize:         envInt("MAX_QUEUE_SIZE", 100),
		MaxConcurrentExtract: envInt("MAX_CONCURRENT_EXTRACT", 5),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		RuleThreshold:  envFloat("RULE_THRESHOLD", 0.65),
		ModelThreshold: envFloat("MODEL_THRESHOLD", 0.75),

		SemanticWeight:   envFloat("SEMANTIC_WEIGHT", 0.4),
		KeywordWeight:    envFloat("KEYWORD_WEIGHT", 0.25),
		StructuralWeight: envFloat("STRUCTURAL_WEIGHT", 0.2),
		QualityWeight:    envFloat("QUALITY_WEIGHT", 0.15),

		DiversityMaxPerDoc:  envInt("DIVERSITY_MAX_PER_DOC", 3),
		DiversityPenaltyPct: envFloat("DIVERSITY_PENALTY_PCT", 0.10),
		DiversityMaxPenalty: envFloat("DIVERSITY_MAX_PENALTY", 0.50),

		MinPageChars:       envInt("MIN_PAGE_CHARS", 100),
		MinSubsectionChars: envInt("MIN_SUBSECTION_CHARS", 50),
		MaxSubsections:     envInt("MAX_SUBSECTIONS", 5),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentExtract <= 0 {
		cfg.MaxConcurrentExtract = 5
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.RuleThreshold <= 0 || cfg.RuleThreshold > 1 {
		cfg.RuleThreshold = 0.65
	}
	if cfg.ModelThreshold <= 0 || cfg.ModelThreshold > 1 {
		cfg.ModelThreshold = 0.75
	}
	if cfg.DiversityMaxPerDoc <= 0 {
		cfg.DiversityMaxPerDoc = 3
	}
	if cfg.MinPageChars <= 0 {
		cfg.MinPageChars = 100
	}
	if cfg.MinSubsectionChars <= 0 {
		cfg.MinSubsectionChars = 50
	}
	if cfg.MaxSubsections <= 0 {
		cfg.MaxSubsections = 5
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocsightAPIKey == "" {
		return fmt.Errorf("DOCSIGHT_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
