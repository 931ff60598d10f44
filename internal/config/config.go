// Package config loads the application's configuration from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-review-reporter/internal/logger"
)

const (
	ProviderBedrock = "bedrock"
	ProviderOllama  = "ollama"
	ProviderGemini  = "gemini"

	URLModePublic    = "public"
	URLModePresigned = "presigned"
)

// Config holds the application's configuration values.
type Config struct {
	AI      AIConfig      `mapstructure:"ai"`
	Storage StorageConfig `mapstructure:"storage"`
	Report  ReportConfig  `mapstructure:"report"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging logger.Config `mapstructure:"logging"`
}

// AIConfig selects the inference provider and its generation parameters.
type AIConfig struct {
	Provider     string  `mapstructure:"provider"`
	Model        string  `mapstructure:"model"`
	Region       string  `mapstructure:"region"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
	OllamaHost   string  `mapstructure:"ollama_host"`
	GeminiAPIKey string  `mapstructure:"gemini_api_key"`
}

// StorageConfig describes where reports are uploaded and how their URLs are built.
type StorageConfig struct {
	Bucket     string        `mapstructure:"bucket"`
	Region     string        `mapstructure:"region"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	URLMode    string        `mapstructure:"url_mode"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
	Endpoint   string        `mapstructure:"endpoint"`
	TempDir    string        `mapstructure:"temp_dir"`
}

// ReportConfig controls the PDF page layout.
type ReportConfig struct {
	PageSize   string  `mapstructure:"page_size"`
	Margin     float64 `mapstructure:"margin"`
	Font       string  `mapstructure:"font"`
	FontSize   float64 `mapstructure:"font_size"`
	LineHeight float64 `mapstructure:"line_height"`
}

// ServerConfig configures the local HTTP server.
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// LoadConfig reads configuration from config.yaml (if present) and RR_* environment
// variables, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/review-reporter")
	return load(v)
}

// LoadConfigFile reads configuration from an explicit file path plus the environment.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("RR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Storage.TempDir == "" {
		cfg.Storage.TempDir = os.TempDir()
	}
	if cfg.Storage.KeyPrefix != "" && !strings.HasSuffix(cfg.Storage.KeyPrefix, "/") {
		cfg.Storage.KeyPrefix += "/"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", ProviderBedrock)
	v.SetDefault("ai.model", "amazon.titan-text-express-v1")
	v.SetDefault("ai.region", "us-east-1")
	v.SetDefault("ai.max_tokens", 800)
	v.SetDefault("ai.temperature", 0.2)
	v.SetDefault("ai.ollama_host", "http://localhost:11434")
	v.SetDefault("ai.gemini_api_key", "")

	v.SetDefault("storage.bucket", "ai-code-review-reports")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.key_prefix", "reports/")
	v.SetDefault("storage.url_mode", URLModePublic)
	v.SetDefault("storage.presign_ttl", time.Hour)
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.temp_dir", "")

	v.SetDefault("report.page_size", "A4")
	v.SetDefault("report.margin", 15)
	v.SetDefault("report.font", "Arial")
	v.SetDefault("report.font_size", 11)
	v.SetDefault("report.line_height", 8)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_body_bytes", 10<<20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}

// Validate checks the configuration for missing or contradictory values.
func (c *Config) Validate() error {
	if err := c.AI.Validate(); err != nil {
		return fmt.Errorf("invalid ai config: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("invalid storage config: %w", err)
	}
	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("invalid report config: %w", err)
	}
	return nil
}

// Validate checks the provider selection and generation parameters.
func (c *AIConfig) Validate() error {
	switch c.Provider {
	case ProviderBedrock, ProviderOllama:
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("gemini_api_key must be set for the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}
	if c.Model == "" {
		return errors.New("model must be set")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0, 1], got %v", c.Temperature)
	}
	return nil
}

// Validate checks the bucket and URL settings.
func (c *StorageConfig) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket must be set")
	}
	switch c.URLMode {
	case URLModePublic:
	case URLModePresigned:
		if c.PresignTTL <= 0 {
			return fmt.Errorf("presign_ttl must be positive, got %s", c.PresignTTL)
		}
	default:
		return fmt.Errorf("unsupported url_mode %q", c.URLMode)
	}
	if strings.HasPrefix(c.KeyPrefix, "/") {
		return fmt.Errorf("key_prefix must not start with '/': %q", c.KeyPrefix)
	}
	if c.KeyPrefix != "" && !strings.HasSuffix(c.KeyPrefix, "/") {
		return fmt.Errorf("key_prefix must end with '/': %q", c.KeyPrefix)
	}
	return nil
}

// Validate checks the page layout values.
func (c *ReportConfig) Validate() error {
	if c.FontSize <= 0 || c.LineHeight <= 0 {
		return errors.New("font_size and line_height must be positive")
	}
	if c.Margin < 0 {
		return errors.New("margin must not be negative")
	}
	return nil
}
