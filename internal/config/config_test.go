package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolateEnv clears the variables Load reads and restores them after the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "UI_PASSWORD", "DATA_DIR", "CAGE_PATH", "MONITOR_INDEX",
		"INPUT_ENABLED", "LOG_LEVEL", "METRICS_ENABLED", "X_DISPLAY", "ICE_SERVERS",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %s: %v", key, err)
		}
	}
	t.Setenv("DATA_DIR", t.TempDir())
}

// TestLoad_Defaults verifies defaults when nothing is configured.
func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.MonitorIndex != 1 || !cfg.InputEnabled || !cfg.MetricsEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CagePath != filepath.Join(cfg.DataDir, "cage.json") {
		t.Fatalf("unexpected cage path: %q", cfg.CagePath)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

// TestLoad_YAMLFile verifies YAML values are applied.
func TestLoad_YAMLFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "deskmouse.yaml")
	body := "listen_addr: 0.0.0.0:9000\nui_password: secret\nmonitor_index: 2\ninput_enabled: false\nice_servers:\n  - stun:stun.example.org:3478\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" || cfg.UIPassword != "secret" || cfg.MonitorIndex != 2 || cfg.InputEnabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.ICEServers) != 1 || cfg.ICEServers[0] != "stun:stun.example.org:3478" {
		t.Fatalf("unexpected ice servers: %v", cfg.ICEServers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

// TestLoad_TOMLFile verifies TOML values are applied.
func TestLoad_TOMLFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "deskmouse.toml")
	body := "listen_addr = \"127.0.0.1:7000\"\nlog_level = \"debug\"\ndisplay = \":1\"\nmetrics_enabled = false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7000" || cfg.LogLevel != "debug" || cfg.Display != ":1" || cfg.MetricsEnabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestLoad_EnvOverridesFile verifies environment variables win over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "deskmouse.yml")
	if err := os.WriteFile(path, []byte("listen_addr: 0.0.0.0:9000\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LISTEN_ADDR", "127.0.0.1:1234")
	t.Setenv("ICE_SERVERS", "stun:a:1, ,stun:b:2")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:1234" {
		t.Fatalf("expected env listen addr, got %q", cfg.ListenAddr)
	}
	if len(cfg.ICEServers) != 2 || cfg.ICEServers[1] != "stun:b:2" {
		t.Fatalf("unexpected ice servers: %v", cfg.ICEServers)
	}
}

// TestLoad_DotEnv verifies DATA_DIR/.env fills unset variables only.
func TestLoad_DotEnv(t *testing.T) {
	isolateEnv(t)
	dir := os.Getenv("DATA_DIR")
	body := "# comment\nexport UI_PASSWORD=\"fromfile\"\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LOG_LEVEL", "warn")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UIPassword != "fromfile" {
		t.Fatalf("expected password from .env, got %q", cfg.UIPassword)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected environment to win over .env, got %q", cfg.LogLevel)
	}
}

// TestLoad_RejectsBadValues verifies validation of numeric settings and file types.
func TestLoad_RejectsBadValues(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MONITOR_INDEX", "zero")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-integer monitor index")
	}
	t.Setenv("MONITOR_INDEX", "0")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for monitor index 0")
	}
	t.Setenv("MONITOR_INDEX", "")
	path := filepath.Join(t.TempDir(), "deskmouse.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

// TestParseEnvLine_Cases verifies comment, export and quoting handling.
func TestParseEnvLine_Cases(t *testing.T) {
	if _, _, ok := parseEnvLine("# nope"); ok {
		t.Fatalf("expected comment to be skipped")
	}
	if _, _, ok := parseEnvLine("novalue"); ok {
		t.Fatalf("expected line without = to be skipped")
	}
	key, value, ok := parseEnvLine(" export KEY = 'a=b' ")
	if !ok || key != "KEY" || value != "a=b" {
		t.Fatalf("unexpected parse: %q=%q ok=%v", key, value, ok)
	}
}
