package config

import (
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Defaults for the generation pipeline. DomainAvailability is a documented
// product constant (the probability a suggestion is flagged as having its
// domain available), not a tuning knob.
const (
	DefaultModel              = "gpt-3.5-turbo-1106"
	DefaultSuggestionCount    = 5
	DefaultTemperature        = 0.8
	DefaultMaxTokens          = 800
	DefaultDomainAvailability = 0.7
	DefaultGatewayTimeout     = 25 * time.Second
)

type Config struct {
	Port    string
	GinMode string

	// Upstream LLM gateway
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	GatewayTimeout time.Duration

	// Generation tuning (overridable via the optional YAML config file)
	Generation *GenerationConfig `yaml:"generation"`

	// Server
	ServerShutdownTimeoutSeconds int

	// CORS
	CORSAllowedOrigins string

	// Logging
	LogLevel  string
	LogFormat string
}

// GenerationConfig holds the prompt and sampling parameters for name generation.
type GenerationConfig struct {
	Model              string  `yaml:"model"`
	SuggestionCount    int     `yaml:"suggestion_count"`
	Temperature        float64 `yaml:"temperature"`
	MaxTokens          int     `yaml:"max_tokens"`
	DomainAvailability float64 `yaml:"domain_availability"`
	SystemPrompt       string  `yaml:"system_prompt"`
}

var AppConfig = &Config{}

func LoadConfig() {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	*AppConfig = Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),

		OpenAIAPIKey:   getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GatewayTimeout: getEnvAsDuration("GATEWAY_TIMEOUT", DefaultGatewayTimeout),

		Generation: DefaultGenerationConfig(),

		ServerShutdownTimeoutSeconds: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 30),

		CORSAllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "debug"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}

	// Load generation tuning from a configuration file when one is present.
	// Environment variables carry deployment concerns; the file carries
	// prompt/sampling parameters that ship with the app.
	configFilePath := getEnvOrDefault("CONFIG_FILE", "config.yaml")

	configFile, err := os.Open(configFilePath)
	if err != nil {
		log.Printf("No config file at %s, using generation defaults", configFilePath)
	} else {
		defer configFile.Close()
		if err := LoadConfigFile(configFile, AppConfig); err != nil {
			log.Fatalf("Failed to load config file: %v", err)
		}
	}

	if AppConfig.OpenAIAPIKey == "" {
		log.Println("Warning: OpenAI API key is missing. Live generation will fail and clients will fall back to mock suggestions. Set OPENAI_API_KEY to enable it.")
	}
}

// DefaultGenerationConfig returns the generation parameters used when no
// config file overrides them.
func DefaultGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Model:              DefaultModel,
		SuggestionCount:    DefaultSuggestionCount,
		Temperature:        DefaultTemperature,
		MaxTokens:          DefaultMaxTokens,
		DomainAvailability: DefaultDomainAvailability,
	}
}

// LoadConfigFile reads YAML settings from the reader into config.
// Split out from LoadConfig so tests can feed in-memory config files.
func LoadConfigFile(reader io.Reader, config *Config) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return err
	}

	if fileConfig.Generation == nil {
		return nil
	}

	if config.Generation == nil {
		config.Generation = DefaultGenerationConfig()
	}

	// Only override what the file actually sets.
	if fileConfig.Generation.Model != "" {
		config.Generation.Model = fileConfig.Generation.Model
	}
	if fileConfig.Generation.SuggestionCount > 0 {
		config.Generation.SuggestionCount = fileConfig.Generation.SuggestionCount
	}
	if fileConfig.Generation.Temperature > 0 {
		config.Generation.Temperature = fileConfig.Generation.Temperature
	}
	if fileConfig.Generation.MaxTokens > 0 {
		config.Generation.MaxTokens = fileConfig.Generation.MaxTokens
	}
	if fileConfig.Generation.DomainAvailability > 0 {
		config.Generation.DomainAvailability = fileConfig.Generation.DomainAvailability
	}
	if fileConfig.Generation.SystemPrompt != "" {
		config.Generation.SystemPrompt = fileConfig.Generation.SystemPrompt
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as time.Duration, using default %v: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as int, using default %d: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}
