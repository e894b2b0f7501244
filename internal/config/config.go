package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings ladle needs to reach the recipe service.
type Config struct {
	ServerURL string
	LogDir    string
}

const (
	defaultConfigPath = "~/.config/ladle/config.toml"
	defaultLogDir     = "~/.local/state/ladle"
	defaultServerURL  = "http://127.0.0.1:8080"

	// serverEnvVar overrides server_url from the config file; a .env file
	// in the working directory is honored before the environment is read.
	serverEnvVar = "LADLE_SERVER_URL"
)

// Load locates and parses the ladle config, falling back to defaults when
// the file is missing. Precedence: LADLE_SERVER_URL > config file > default.
func Load(path string) (Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ServerURL: defaultServerURL, LogDir: mustExpand(defaultLogDir)}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL string `toml:"server_url"`
		LogDir    string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LogPath returns the path of ladle's own log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "ladle.log")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(serverEnvVar)); v != "" {
		cfg.ServerURL = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
