package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/groom/internal/locate"
)

// Config represents the groom configuration.
type Config struct {
	Provider       string      `json:"provider"`
	Model          string      `json:"model"`
	BaseURL        string      `json:"baseURL,omitempty"`
	TimeoutSeconds int         `json:"timeoutSeconds"`
	MaxTokens      int         `json:"maxTokens"`
	SourceDir      string      `json:"sourceDir"`
	Targets        []string    `json:"targets"`
	SkipSecrets    bool        `json:"skipSecrets"`
	LogLevel       string      `json:"logLevel"`
	Cache          CacheConfig `json:"cache"`
}

// CacheConfig controls rewrite-response caching behavior.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:       "anthropic",
		Model:          "claude-sonnet-4-6",
		TimeoutSeconds: 120,
		MaxTokens:      16384,
		SourceDir:      locate.DefaultSourceDir,
		Targets:        append([]string(nil), locate.DefaultTargets...),
		SkipSecrets:    true,
		LogLevel:       "info",
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 604800, // 7 days
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for groom.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "groom"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "groom"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "groom"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "groom"), nil
	default:
		return filepath.Join(home, ".config", "groom"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := readFileConfig()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

// fileConfig mirrors Config with pointer booleans so an explicit false in
// the file is distinguishable from an absent key during the merge.
type fileConfig struct {
	Provider       string   `json:"provider"`
	Model          string   `json:"model"`
	BaseURL        string   `json:"baseURL"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	MaxTokens      int      `json:"maxTokens"`
	SourceDir      string   `json:"sourceDir"`
	Targets        []string `json:"targets"`
	SkipSecrets    *bool    `json:"skipSecrets"`
	LogLevel       string   `json:"logLevel"`
	Cache          struct {
		Enabled    *bool  `json:"enabled"`
		Dir        string `json:"dir"`
		TTLSeconds int    `json:"ttlSeconds"`
	} `json:"cache"`
}

func readFileConfig() (fileConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return fileConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return fc, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.SourceDir != "" {
		dst.SourceDir = src.SourceDir
	}
	if len(src.Targets) > 0 {
		dst.Targets = src.Targets
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = *src.Cache.Enabled
	}
	if src.SkipSecrets != nil {
		dst.SkipSecrets = *src.SkipSecrets
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GROOM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("GROOM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GROOM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" && cfg.BaseURL == "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GROOM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("GROOM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("GROOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["baseURL"]; ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "baseURL":
		cfg.BaseURL = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "sourceDir":
		cfg.SourceDir = value
	case "targets":
		var targets []string
		for _, t := range strings.Split(value, ",") {
			if t = strings.TrimSpace(t); t != "" {
				targets = append(targets, t)
			}
		}
		if len(targets) == 0 {
			return fmt.Errorf("targets must be a comma-separated list of file names")
		}
		cfg.Targets = targets
	case "skipSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("skipSecrets must be a boolean: %w", err)
		}
		cfg.SkipSecrets = b
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
