package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultModel = "gemini-2.5-flash"

type Config struct {
	GeminiAPIKey      string        `yaml:"geminiApiKey"`
	GeminiModel       string        `yaml:"geminiModel"`
	HTTPPort          string        `yaml:"httpPort"`
	LogLevel          string        `yaml:"logLevel"`
	LogMode           string        `yaml:"logMode"`
	StaticDir         string        `yaml:"staticDir"`
	ModelTimeout      time.Duration `yaml:"modelTimeout"`
	ModelMaxRetries   int           `yaml:"modelMaxRetries"`
	ModelRetryBackoff time.Duration `yaml:"modelRetryBackoff"`

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool `yaml:"-"`
}

// GeminiConfigured reports whether an API key is available. Without one the
// service still starts but every tool answers 503.
func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func defaults() Config {
	return Config{
		GeminiModel:       DefaultModel,
		HTTPPort:          "8080",
		LogLevel:          "INFO",
		LogMode:           "development",
		ModelTimeout:      60 * time.Second,
		ModelMaxRetries:   1,
		ModelRetryBackoff: 500 * time.Millisecond,
	}
}

// Load resolves configuration from built-in defaults, then the YAML file
// named by CONFIG_FILE (if set), then environment variables. A .env file in
// the working directory is loaded into the environment first.
func Load() (Config, error) {
	cfg := defaults()
	cfg.EnvFileLoaded = godotenv.Load() == nil

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", cfg.GeminiAPIKey))
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)

	var err error
	if cfg.ModelTimeout, err = getEnvAsDuration("MODEL_TIMEOUT", cfg.ModelTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ModelMaxRetries, err = getEnvAsInt("MODEL_MAX_RETRIES", cfg.ModelMaxRetries); err != nil {
		return Config{}, err
	}
	if cfg.ModelRetryBackoff, err = getEnvAsDuration("MODEL_RETRY_BACKOFF", cfg.ModelRetryBackoff); err != nil {
		return Config{}, err
	}
	if cfg.ModelMaxRetries < 0 {
		return Config{}, fmt.Errorf("MODEL_MAX_RETRIES must not be negative, got %d", cfg.ModelMaxRetries)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return value, nil
}
