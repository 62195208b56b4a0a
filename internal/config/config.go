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

// Config captures everything roster reads from its config file.
type Config struct {
	APIURL      string
	Results     int
	Nationality string
	Seed        string
	Timeout     time.Duration
	LogDir      string
	LogLevel    string
	ExportDir   string
}

const (
	defaultConfigPath  = "~/.config/roster/config.toml"
	defaultAPIURL      = "https://randomuser.me/api/"
	defaultResults     = 12
	defaultNationality = "us"
	defaultTimeout     = 10 * time.Second
	defaultLogDir      = "~/.local/state/roster"
	defaultLogLevel    = "info"
	defaultExportDir   = "."
	logFileName        = "roster.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:      defaultAPIURL,
		Results:     defaultResults,
		Nationality: defaultNationality,
		Timeout:     defaultTimeout,
		LogDir:      mustExpand(defaultLogDir),
		LogLevel:    defaultLogLevel,
		ExportDir:   mustExpand(defaultExportDir),
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		APIURL      string `toml:"api_url"`
		Results     int    `toml:"results"`
		Nationality string `toml:"nationality"`
		Seed        string `toml:"seed"`
		Timeout     string `toml:"timeout"`
		LogDir      string `toml:"log_dir"`
		LogLevel    string `toml:"log_level"`
		ExportDir   string `toml:"export_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.Results > 0 {
		cfg.Results = raw.Results
	}
	if v := strings.TrimSpace(raw.Nationality); v != "" {
		cfg.Nationality = strings.ToLower(v)
	}
	cfg.Seed = strings.TrimSpace(raw.Seed)
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: timeout %q: %w", v, err)
		}
		if timeout > 0 {
			cfg.Timeout = timeout
		}
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.ExportDir); v != "" {
		cfg.ExportDir = mustExpand(v)
	}

	return cfg, nil
}

// LogPath returns the path to roster's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
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

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
