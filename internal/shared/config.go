package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Services ServicesConfig `toml:"services"`
	Session  SessionConfig  `toml:"session"`
	Player   PlayerConfig   `toml:"player"`
	Playback PlaybackConfig `toml:"playback"`
}

// ServicesConfig contains the base URLs of the backend services.
type ServicesConfig struct {
	AuthURL        string  `toml:"auth_url"`
	MovieURL       string  `toml:"movie_url"`
	TVURL          string  `toml:"tv_url"`
	InteractionURL string  `toml:"interaction_url"`
	RequestRate    float64 `toml:"request_rate"`
}

// SessionConfig controls where the remembered session is stored.
type SessionConfig struct {
	Path string `toml:"path"`
}

// PlayerConfig describes the external player used for playback.
type PlayerConfig struct {
	Command      string `toml:"command"`
	EmbedBaseURL string `toml:"embed_base_url"`
	PrimaryColor string `toml:"primary_color"`
	Autoplay     bool   `toml:"autoplay"`
}

// PlaybackConfig holds the progress-save tuning parameters. The defaults
// (15s interval, 0.9 completion ratio) match the hosted web client.
type PlaybackConfig struct {
	SaveIntervalSeconds float64 `toml:"save_interval_seconds"`
	CompletedRatio      float64 `toml:"completed_ratio"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SessionPath resolves the session file location, defaulting to
// ~/.streamix/session.json when unset.
func (c *Config) SessionPath() string {
	if c.Session.Path != "" {
		return c.Session.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".streamix", "session.json")
	}
	return filepath.Join(home, ".streamix", "session.json")
}
