package config

// #region imports
import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// #endregion

// #region config

// Config is built once at process start and passed into constructors; no
// ambient env lookups happen inside request handling.
type Config struct {
	Addr      string `env:"TUTOR_ADDR" envDefault:":8000"`
	DBPath    string `env:"TUTOR_DB" envDefault:"socratic.db"`
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`

	// LLM settings
	LLMProvider   string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	GoogleAPIKey  string        `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	DefaultModel  string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	FallbackModel string        `env:"FALLBACK_MODEL" envDefault:"gemini-1.5-flash-8b"`
	CallTimeout   time.Duration `env:"LLM_CALL_TIMEOUT" envDefault:"30s"`

	// Maintenance
	RollupEnabled bool `env:"ROLLUP_ENABLED" envDefault:"true"`
}

// New parses configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// APIKey returns the credential for the configured provider. Empty means
// the generation capability is unconfigured.
func (c *Config) APIKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GoogleAPIKey
}

// #endregion config
