package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
endpoint: https://records.example.com/api
timeout_ms: 5000
record: 001xx000003DGXzAAO
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != "https://records.example.com/api" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.TimeoutMs != 5000 {
		t.Errorf("TimeoutMs = %d, want 5000", cfg.TimeoutMs)
	}
	if cfg.Record != "001xx000003DGXzAAO" {
		t.Errorf("Record = %q", cfg.Record)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "endpoint: [broken")
	if _, err := Load(path); err == nil {
		t.Error("Load() with broken YAML should fail")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{Endpoint: "https://records.example.com"}
	cfg.Normalize()

	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Endpoint: "https://records.example.com", TimeoutMs: 1000},
		},
		{
			name:    "missing endpoint",
			cfg:     Config{TimeoutMs: 1000},
			wantErr: true,
		},
		{
			name:    "endpoint is not a URL",
			cfg:     Config{Endpoint: "not a url"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Endpoint: "https://records.example.com", TimeoutMs: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
