// Package config loads configuration for the deskmouse server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr   = "127.0.0.1:8787"
	defaultDataDir      = "./data"
	defaultMonitorIdx   = 1
	defaultInputEnabled = true
	defaultLogLevel     = "info"
	defaultMetrics      = true
)

// ErrPasswordRequired is returned when no UI password is configured.
var ErrPasswordRequired = errors.New("UI_PASSWORD is required")

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string   `yaml:"listen_addr" toml:"listen_addr"`
	UIPassword     string   `yaml:"ui_password" toml:"ui_password"`
	DataDir        string   `yaml:"data_dir" toml:"data_dir"`
	CagePath       string   `yaml:"cage_path" toml:"cage_path"`
	MonitorIndex   int      `yaml:"monitor_index" toml:"monitor_index"`
	InputEnabled   bool     `yaml:"input_enabled" toml:"input_enabled"`
	LogLevel       string   `yaml:"log_level" toml:"log_level"`
	MetricsEnabled bool     `yaml:"metrics_enabled" toml:"metrics_enabled"`
	Display        string   `yaml:"display" toml:"display"`
	ICEServers     []string `yaml:"ice_servers" toml:"ice_servers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		MonitorIndex:   defaultMonitorIdx,
		InputEnabled:   defaultInputEnabled,
		LogLevel:       defaultLogLevel,
		MetricsEnabled: defaultMetrics,
	}
}

// Load builds the configuration from defaults, an optional YAML or TOML file,
// DATA_DIR/.env and environment variables, in increasing precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	if cfg.CagePath == "" {
		cfg.CagePath = filepath.Join(cfg.DataDir, "cage.json")
	}
	cfg.CagePath = envString("CAGE_PATH", cfg.CagePath)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.Display = envString("X_DISPLAY", cfg.Display)
	if pw := strings.TrimSpace(os.Getenv("UI_PASSWORD")); pw != "" {
		cfg.UIPassword = pw
	}

	monitorIdx, err := envInt("MONITOR_INDEX", cfg.MonitorIndex)
	if err != nil {
		return Config{}, err
	}
	if monitorIdx < 1 {
		return Config{}, fmt.Errorf("MONITOR_INDEX must be >= 1")
	}
	cfg.MonitorIndex = monitorIdx

	cfg.InputEnabled = envBool("INPUT_ENABLED", cfg.InputEnabled)
	cfg.MetricsEnabled = envBool("METRICS_ENABLED", cfg.MetricsEnabled)

	if raw := strings.TrimSpace(os.Getenv("ICE_SERVERS")); raw != "" {
		cfg.ICEServers = splitList(raw)
	}

	return cfg, nil
}

// Validate checks settings required by the server.
func (c Config) Validate() error {
	if c.UIPassword == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen address is required")
	}
	return nil
}

// loadFile decodes a YAML or TOML file over cfg, chosen by extension.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	return nil
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
