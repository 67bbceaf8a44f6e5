package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the shell's file-based settings.
type Config struct {
	DataDir      string
	LogDir       string
	RefreshEvery time.Duration
}

const (
	defaultConfigPath   = "~/.config/aw-shell/config.toml"
	defaultDataDir      = "~/.local/share/activitywatch"
	defaultLogDir       = "~/.cache/activitywatch/log"
	defaultRefreshEvery = 2 * time.Second

	storeName = "aw-shell"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the shell config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:      mustExpand(defaultDataDir),
		LogDir:       mustExpand(defaultLogDir),
		RefreshEvery: defaultRefreshEvery,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir        string `toml:"data_dir"`
		LogDir         string `toml:"log_dir"`
		RefreshSeconds int    `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}

	return cfg, nil
}

// StorePath returns the data store directory. Testing mode gets its own
// directory so it never touches production data.
func (c Config) StorePath(testing bool) string {
	dir := c.DataDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultDataDir)
	}
	return filepath.Join(dir, storeFileName(testing))
}

// LogPath returns the runtime log file for the given mode.
func (c Config) LogPath(testing bool) string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, storeFileName(testing)+".log")
}

func storeFileName(testing bool) string {
	if testing {
		return storeName + "-testing"
	}
	return storeName
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
