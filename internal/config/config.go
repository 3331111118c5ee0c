// Package config handles configuration loading for askweb.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultBaseURL matches the development port of the chat backend
const DefaultBaseURL = "http://localhost:5000"

// VoiceConfig configures the speech capability adapters.
// Commands are split on whitespace; "{locale}" is replaced by Locale.
type VoiceConfig struct {
	Enabled bool   `json:"enabled" env:"ASKWEB_VOICE_ENABLED"`
	Locale  string `json:"locale" env:"ASKWEB_VOICE_LOCALE"`
	// RecognizeCommand prints a single transcript line on stdout.
	// Empty output means capture ended without a result.
	RecognizeCommand string `json:"recognize_command" env:"ASKWEB_VOICE_RECOGNIZE_COMMAND"`
	// SpeakCommand reads the text to speak on stdin.
	SpeakCommand string `json:"speak_command" env:"ASKWEB_VOICE_SPEAK_COMMAND"`
	SpeakReplies bool   `json:"speak_replies" env:"ASKWEB_VOICE_SPEAK_REPLIES"`
}

// Config represents the user configuration
type Config struct {
	BaseURL string `json:"base_url" env:"ASKWEB_BASE_URL"`
	// TimeoutSeconds bounds a single request at the transport level.
	TimeoutSeconds  int         `json:"timeout_seconds" env:"ASKWEB_TIMEOUT_SECONDS"`
	TUITheme        string      `json:"tui_theme,omitempty" env:"ASKWEB_THEME"`
	MarkdownStyle   string      `json:"markdown_style,omitempty" env:"GLAMOUR_STYLE"`
	CopyToClipboard bool        `json:"copy_to_clipboard" env:"ASKWEB_COPY_TO_CLIPBOARD"`
	LogFile         string      `json:"log_file,omitempty" env:"ASKWEB_LOG_FILE"`
	LogLevel        string      `json:"log_level,omitempty" env:"ASKWEB_LOG_LEVEL"`
	Voice           VoiceConfig `json:"voice"`
}

// DefaultVoiceConfig returns the default voice configuration
func DefaultVoiceConfig() VoiceConfig {
	return VoiceConfig{
		Enabled:      true,
		Locale:       "en-US",
		SpeakCommand: "espeak-ng -v {locale}",
		SpeakReplies: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		BaseURL:         DefaultBaseURL,
		TimeoutSeconds:  300,
		TUITheme:        "tokyonight",
		MarkdownStyle:   "dark",
		CopyToClipboard: false,
		LogFile:         filepath.Join(homeDir, ".askweb", "askweb.log"),
		LogLevel:        "info",
		Voice:           DefaultVoiceConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".askweb"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadDotEnv loads a .env file into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the configuration from path, then applies the
// environment overlay. A missing file yields the defaults.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize fills blanks left by a partial config file or environment
func (c *Config) normalize() {
	defaults := DefaultConfig()
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.Voice.Locale == "" {
		c.Voice.Locale = defaults.Voice.Locale
	}
}

// Timeout returns the per-request transport timeout
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Duration(DefaultConfig().TimeoutSeconds) * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}
	return SaveConfigTo(filepath.Join(configDir, "config.json"), cfg)
}

// SaveConfigTo writes the configuration to path
func SaveConfigTo(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExpandCommand splits a configured command line and substitutes the locale
func ExpandCommand(command, locale string) []string {
	fields := strings.Fields(command)
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, "{locale}", locale)
	}
	return fields
}
