package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once at process
// entry and passed explicitly to every component; nothing reads viper after Load.
type Config struct {
	App     App     `mapstructure:"app"`
	AI      AI      `mapstructure:"ai"`
	Content Content `mapstructure:"content"`
	Server  Server  `mapstructure:"server"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug     bool   `mapstructure:"debug"`
	OutputDir string `mapstructure:"output_dir"`
}

// AI holds AI/LLM configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Content holds content generation defaults
type Content struct {
	DefaultArticleLength int    `mapstructure:"default_article_length"`
	MaxKeywordsPerArticle int   `mapstructure:"max_keywords_per_article"`
	DefaultTone          string `mapstructure:"default_tone"`
	DefaultContentType   string `mapstructure:"default_content_type"`
	CalendarDays         int    `mapstructure:"calendar_days"`
}

// Server holds HTTP API configuration
type Server struct {
	Port         int    `mapstructure:"port"`
	Mode         string `mapstructure:"mode"`
	AllowOrigins string `mapstructure:"allow_origins"`
}

// Logging holds logging configuration
type Logging struct {
	Level string `mapstructure:"level"`
}

// Load loads the configuration from the config file, environment variables and
// defaults. The returned struct is the only configuration surface; callers
// thread it into constructors rather than reading globals.
func Load(configFile string) (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName(".seoforge")
		v.SetConfigType("yaml")
	}

	setDefaults(v)
	bindEnvironmentVariables(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.debug", false)
	v.SetDefault("app.output_dir", "output")

	// AI defaults
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.max_tokens", 2000)
	v.SetDefault("ai.gemini.temperature", 0.7)

	// Content defaults
	v.SetDefault("content.default_article_length", 1500)
	v.SetDefault("content.max_keywords_per_article", 5)
	v.SetDefault("content.default_tone", "professional")
	v.SetDefault("content.default_content_type", "blog_post")
	v.SetDefault("content.calendar_days", 7)

	// Server defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allow_origins", "*")

	// Logging defaults
	v.SetDefault("logging.level", "info")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables(v *viper.Viper) {
	// Gemini API key - support multiple formats
	bindEnvKeys(v, "ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys(v, "server.port", []string{"PORT"})
}

// bindEnvKeys binds the first set environment variable from the list to the key
func bindEnvKeys(v *viper.Viper, key string, envVars []string) {
	for _, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			v.Set(key, value)
			return
		}
	}
}

// validate checks configuration invariants that would otherwise surface as
// confusing runtime failures.
func validate(config *Config) error {
	if config.Content.DefaultArticleLength <= 0 {
		return fmt.Errorf("content.default_article_length must be positive, got %d", config.Content.DefaultArticleLength)
	}
	if config.Content.CalendarDays <= 0 {
		return fmt.Errorf("content.calendar_days must be positive, got %d", config.Content.CalendarDays)
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0,65535], got %d", config.Server.Port)
	}
	return nil
}

// RequireGeminiKey returns an error when no API key is configured. Commands that
// make generation calls check this up front for a friendlier failure.
func (c *Config) RequireGeminiKey() error {
	if c.AI.Gemini.APIKey == "" {
		return fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY environment variable or ai.gemini.api_key in config file.\nGet your API key from: https://makersuite.google.com/app/apikey")
	}
	return nil
}
