package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Twilio    TwilioConfig
	Server    ServerConfig
	Redis     RedisConfig
	Knowledge KnowledgeConfig
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	RAG       RAGConfig
	Limits    LimitsConfig
	Admin     AdminConfig
}

// TwilioConfig holds telephony provider credentials
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	PublicURL string
	Greeting  string
}

// RedisConfig holds session store connection settings
type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	SessionTTL int // seconds
}

// KnowledgeConfig holds the vector index connection settings
type KnowledgeConfig struct {
	DatabaseURL string
	Table       string
}

// GeminiConfig holds Google AI generation settings
type GeminiConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	Temperature    float64
	MaxTokens      int
}

// OpenAIConfig holds the alternate generation backend settings
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// RAGConfig holds retrieval and ingestion settings
type RAGConfig struct {
	Enabled      bool
	Provider     string // gemini or openai
	TopK         int
	ChunkSize    int
	ChunkOverlap int
}

// LimitsConfig holds concurrency limits
type LimitsConfig struct {
	MaxConcurrentCalls int
}

// AdminConfig holds operator endpoint protection settings
type AdminConfig struct {
	JWTSecret string // empty disables the guard
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		// Missing env.local is fine when everything is set in the environment
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}

	var err error
	if cfg.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Twilio.PhoneNumber, err = requireEnv("TWILIO_PHONE_NUMBER"); err != nil {
		return nil, err
	}

	if cfg.Server.PublicURL, err = requireEnv("PUBLIC_URL"); err != nil {
		return nil, err
	}
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.Greeting = getEnvWithDefault("GREETING_MESSAGE",
		"Hello! I'm your AI assistant. What is your preference language?")

	cfg.Redis.Enabled = boolEnv("REDIS_ENABLED", true)
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.SessionTTL, err = intEnv("SESSION_TTL_SECONDS", 3600); err != nil {
		return nil, err
	}

	cfg.RAG.Enabled = boolEnv("RAG_ENABLED", true)
	cfg.RAG.Provider = getEnvWithDefault("GENERATION_PROVIDER", "gemini")
	if cfg.RAG.TopK, err = intEnv("RAG_TOP_K", 5); err != nil {
		return nil, err
	}
	if cfg.RAG.ChunkSize, err = intEnv("RAG_CHUNK_SIZE", 512); err != nil {
		return nil, err
	}
	if cfg.RAG.ChunkOverlap, err = intEnv("RAG_CHUNK_OVERLAP", 50); err != nil {
		return nil, err
	}

	if cfg.RAG.Enabled {
		if cfg.Knowledge.DatabaseURL, err = requireEnv("KNOWLEDGE_DB_URL"); err != nil {
			return nil, err
		}
	} else {
		cfg.Knowledge.DatabaseURL = os.Getenv("KNOWLEDGE_DB_URL")
	}
	cfg.Knowledge.Table = getEnvWithDefault("KNOWLEDGE_TABLE", "company_knowledge")

	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Gemini.Model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-pro")
	cfg.Gemini.EmbeddingModel = getEnvWithDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004")
	if cfg.Gemini.Temperature, err = floatEnv("GEMINI_TEMPERATURE", 0.7); err != nil {
		return nil, err
	}
	if cfg.Gemini.MaxTokens, err = intEnv("GEMINI_MAX_TOKENS", 500); err != nil {
		return nil, err
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAI.Model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")

	if cfg.RAG.Enabled && cfg.RAG.Provider == "gemini" && cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrEmptyEnvironmentVariable)
	}
	if cfg.RAG.Enabled && cfg.RAG.Provider == "openai" && cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY", ErrEmptyEnvironmentVariable)
	}

	if cfg.Limits.MaxConcurrentCalls, err = intEnv("MAX_CONCURRENT_CALLS", 100); err != nil {
		return nil, err
	}

	cfg.Admin.JWTSecret = os.Getenv("ADMIN_JWT_SECRET")

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyEnvironmentVariable, key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func floatEnv(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func boolEnv(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
