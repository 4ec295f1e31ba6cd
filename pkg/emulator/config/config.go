package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/logs"
)

// Sentinel errors returned by Load so callers can detect exact
// failure modes using errors.Is().
var (
	ErrConfigParse   = errors.New("invalid config content")
	ErrConfigInvalid = errors.New("invalid config values")
)

const (
	// EnvConfigPath is the environment variable used to override the config path
	EnvConfigPath = "FIREBASE_LOGS_CONFIG"

	// DefaultConfigDir is the directory under the user's home where the config
	// file is expected when no explicit path or env var is provided.
	DefaultConfigDir = ".firebase-logs"

	// DefaultConfigFile is the config filename to look for in the default dir.
	DefaultConfigFile = "config.yaml"
)

// Config holds the optional settings of the adapter. Every field has a
// working default so running without a config file is the common case.
type Config struct {
	// LogPath of the emulator log; FIREBASE_LOG_PATH still wins over the default.
	LogPath  string     `json:"logPath,omitempty" yaml:"logPath,omitempty"`
	Services []string   `json:"services,omitempty" yaml:"services,omitempty"`
	Defaults logs.Query `json:"defaults" yaml:"defaults,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	services := make([]string, len(logs.DefaultServices))
	copy(services, logs.DefaultServices)
	cfg := &Config{Services: services}
	cfg.Defaults.Service.S(logs.ServiceAll)
	cfg.Defaults.Lines.S(logs.DefaultLines)
	return cfg
}

// ResolveConfigPath returns the config file to load, or "" when none applies.
// An explicit path is returned as is even if it does not exist, so that Load
// can report it.
func ResolveConfigPath(configPath string) string {
	if p := strings.TrimSpace(configPath); p != "" {
		return p
	}
	if envPath := strings.TrimSpace(os.Getenv(EnvConfigPath)); envPath != "" {
		return envPath
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
		if _, err := os.Stat(defaultPath); err == nil {
			return defaultPath
		}
	}
	return ""
}

// Load reads the config file designated by configPath (see ResolveConfigPath)
// and layers it over Default. Without any file the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	path := ResolveConfigPath(configPath)
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg Config
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("%w: parsing JSON %s: %v", ErrConfigParse, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("%w: parsing YAML %s: %v", ErrConfigParse, path, err)
		}
	default:
		// Try JSON then YAML as a fallback
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			fileCfg = Config{}
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("%w: unsupported or invalid config format for file: %s", ErrConfigParse, path)
			}
		}
	}

	cfg.merge(&fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) merge(other *Config) {
	if other.LogPath != "" {
		c.LogPath = other.LogPath
	}
	if len(other.Services) > 0 {
		c.Services = other.Services
	}
	c.Defaults.MergeInto(&other.Defaults)
}

// Validate reports every problem found in the config in a single error.
func (c *Config) Validate() error {
	problems := []string{}

	for i, s := range c.Services {
		switch strings.TrimSpace(s) {
		case "":
			problems = append(problems, fmt.Sprintf("services[%d] is empty", i))
		case logs.ServiceAll:
			problems = append(problems, fmt.Sprintf("services[%d] must not be '%s', it is always available", i, logs.ServiceAll))
		}
	}

	if c.Defaults.Lines.Set && c.Defaults.Lines.Valid && c.Defaults.Lines.Value <= 0 {
		problems = append(problems, fmt.Sprintf("defaults.lines must be positive, got %d", c.Defaults.Lines.Value))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrConfigInvalid, strings.Join(problems, "\n  "))
	}
	return nil
}

// ServiceEnum returns the configured services followed by logs.ServiceAll.
func (c *Config) ServiceEnum() []string {
	enum := make([]string, 0, len(c.Services)+1)
	enum = append(enum, c.Services...)
	return append(enum, logs.ServiceAll)
}

// LogFile resolves the log file path for an explicit override, falling back
// to the configured path and then to the environment/default resolution.
func (c *Config) LogFile(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if strings.TrimSpace(os.Getenv(logs.EnvLogPath)) == "" && c.LogPath != "" {
		return c.LogPath
	}
	return logs.ResolvePath("")
}
