package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tailored-agentic-units/recordstore/batch"
	"github.com/tailored-agentic-units/recordstore/config"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Batch.Size != 10 {
		t.Errorf("got Batch.Size %d, want 10", cfg.Batch.Size)
	}
	if cfg.Observability.Observer != "slog" {
		t.Errorf("got Observability.Observer %q, want %q", cfg.Observability.Observer, "slog")
	}
	if cfg.Store.Connection != "" {
		t.Errorf("got Store.Connection %q, want empty", cfg.Store.Connection)
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	want := cfg

	cfg.Merge(&config.Config{})

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Merge of zero config changed defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"store": {"connection": "postgresql://localhost/mydb"},
		"batch": {"size": 4}
	}`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Store.Connection != "postgresql://localhost/mydb" {
		t.Errorf("got Store.Connection %q, want %q", cfg.Store.Connection, "postgresql://localhost/mydb")
	}
	if cfg.Batch.Size != 4 {
		t.Errorf("got Batch.Size %d, want 4", cfg.Batch.Size)
	}
	if cfg.Observability.Observer != "slog" {
		t.Errorf("got Observability.Observer %q, want %q (default)", cfg.Observability.Observer, "slog")
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
store:
  connection: sqlite://records.db
batch:
  size: 25
observability:
  observer: noop
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := config.Config{}
	want.Store.Connection = "sqlite://records.db"
	want.Batch.Size = 25
	want.Observability.Observer = "noop"

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := config.LoadConfig("/nonexistent/path/config.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "bad.json", content: "{invalid}"},
		{name: "yaml", file: "bad.yml", content: "store: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			if _, err := config.LoadConfig(path); err == nil {
				t.Fatal("expected parse error, got nil")
			}
		})
	}
}

func TestLoadConfig_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "")

	_, err := config.LoadConfig(path)
	if !errors.Is(err, config.ErrUnsupportedFormat) {
		t.Errorf("LoadConfig error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults error = %v", err)
	}

	cfg.Batch.Size = -1
	if err := cfg.Validate(); !errors.Is(err, batch.ErrInvalidArgument) {
		t.Errorf("Validate() error = %v, want ErrInvalidArgument", err)
	}
}
