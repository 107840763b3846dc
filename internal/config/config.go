package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ScoringConfig selects the generative-model provider used for scoring
type ScoringConfig struct {
	Provider string `yaml:"provider"` // "openai" or "claude"
	Model    string `yaml:"model"`
}

// Config holds everything the application needs at startup. It is built
// once in main and passed to the clients; nothing reads the environment
// after this.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Scoring  *ScoringConfig `yaml:"scoring,omitempty"`

	// Secrets, from the environment only
	WeatherAPIKey string `yaml:"-"`
	ScoringAPIKey string `yaml:"-"`
}

// DefaultConfigPath returns the user config file location
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "surfscout", "config.yaml")
}

// DBPath returns the location of the saved-beaches database
func DBPath() string {
	return filepath.Join(xdg.DataHome, "surfscout", "surfscout.db")
}

// LogPath returns the debug log location. The TUI owns stdout, so logs
// go to a file.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "surfscout", "surfscout.log")
}

// Load builds the configuration from an optional YAML file plus the
// environment. A .env file in the working directory is honored.
func Load(path string) (*Config, error) {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: "info",
		Scoring:  &ScoringConfig{Provider: "openai"},
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if cfg.Scoring == nil {
		cfg.Scoring = &ScoringConfig{Provider: "openai"}
	}
	if cfg.Scoring.Provider == "" {
		cfg.Scoring.Provider = "openai"
	}

	cfg.WeatherAPIKey = os.Getenv("WILLYWEATHER_API_KEY")
	cfg.ScoringAPIKey = scoringKeyFromEnv(cfg.Scoring.Provider)

	return cfg, nil
}

func scoringKeyFromEnv(provider string) string {
	switch provider {
	case "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

// Validate fails fast when a required secret is missing
func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return fmt.Errorf("WILLYWEATHER_API_KEY is not set (add it to your environment or .env file)")
	}
	if c.ScoringAPIKey == "" {
		switch c.Scoring.Provider {
		case "claude":
			return fmt.Errorf("ANTHROPIC_API_KEY is not set (add it to your environment or .env file)")
		default:
			return fmt.Errorf("OPENAI_API_KEY is not set (add it to your environment or .env file)")
		}
	}
	return nil
}

// InitLogging sets up the file-backed logger. The caller closes the
// returned file on exit.
func (c *Config) InitLogging() (*os.File, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	path := LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
