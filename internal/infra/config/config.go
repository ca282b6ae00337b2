package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported model providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	LLM       LLMConfig       `yaml:"llm"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Web       WebConfig       `yaml:"web"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address            string        `yaml:"address"`
	ReadTimeout        time.Duration `yaml:"readTimeout"`
	WriteTimeout       time.Duration `yaml:"writeTimeout"`
	AllowedOrigins     []string      `yaml:"allowedOrigins"`
	MaxMultipartMemory int64         `yaml:"maxMultipartMemory"`
}

// LLMConfig selects and configures the model provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// KnowledgeConfig points at the notary / quick answer document.
type KnowledgeConfig struct {
	Path   string   `yaml:"path"`
	Format string   `yaml:"format"`
	R2     R2Config `yaml:"r2"`
}

// R2Config reads the knowledge document from an S3-compatible bucket.
type R2Config struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// WebConfig controls the landing page.
type WebConfig struct {
	Title string `yaml:"title"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := lookupAPIKey(cfg.LLM.Provider); v != "" {
		cfg.LLM.APIKey = v
	}
	cfg.LLM.APIKey = cleanSecret(cfg.LLM.APIKey)
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("KNOWLEDGE_PATH"); v != "" {
		cfg.Knowledge.Path = v
	}
	if v := os.Getenv("KNOWLEDGE_FORMAT"); v != "" {
		cfg.Knowledge.Format = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_ENABLED"); v != "" {
		cfg.Knowledge.R2.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("KNOWLEDGE_R2_ENDPOINT"); v != "" {
		cfg.Knowledge.R2.Endpoint = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_ACCESS_KEY"); v != "" {
		cfg.Knowledge.R2.AccessKey = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_SECRET_KEY"); v != "" {
		cfg.Knowledge.R2.SecretKey = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_BUCKET"); v != "" {
		cfg.Knowledge.R2.Bucket = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_REGION"); v != "" {
		cfg.Knowledge.R2.Region = v
	}
	if v := os.Getenv("KNOWLEDGE_R2_KEY"); v != "" {
		cfg.Knowledge.R2.Key = v
	}
}

// lookupAPIKey prefers the generic variable over the provider specific one.
func lookupAPIKey(provider string) string {
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		return v
	}
	switch provider {
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

// cleanSecret strips whitespace and quotes copied from .env files.
func cleanSecret(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"'`)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:            ":5500",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       90 * time.Second,
			MaxMultipartMemory: 8 << 20,
		},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			Model:       "gpt-4o-mini",
			Temperature: 0.2,
		},
		Knowledge: KnowledgeConfig{
			Path: "data.json",
			R2: R2Config{
				Region: "auto",
			},
		},
		Web: WebConfig{
			Title: "Yuridik AI yordamchi",
		},
	}
}

// Validate ensures the configuration is safe to use. Knowledge and
// credential problems are not fatal and are left to the providers.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if c.HTTP.MaxMultipartMemory <= 0 {
		return errors.New("http.maxMultipartMemory must be positive")
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if !c.Knowledge.R2.Enabled && strings.TrimSpace(c.Knowledge.Path) == "" {
		return errors.New("knowledge.path cannot be empty")
	}
	return nil
}
