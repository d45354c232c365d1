package store_test

import (
	"testing"

	"github.com/tailored-agentic-units/recordstore/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := store.DefaultConfig()

	if cfg.Connection != "" {
		t.Errorf("got Connection %q, want empty string", cfg.Connection)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := store.DefaultConfig()

	cfg.Merge(&store.Config{Connection: "postgresql://localhost/mydb"})

	if cfg.Connection != "postgresql://localhost/mydb" {
		t.Errorf("got Connection %q, want %q", cfg.Connection, "postgresql://localhost/mydb")
	}
}

func TestConfig_Merge_EmptyPreservesDefault(t *testing.T) {
	cfg := store.Config{Connection: "original"}

	cfg.Merge(&store.Config{})

	if cfg.Connection != "original" {
		t.Errorf("got Connection %q, want %q (preserved)", cfg.Connection, "original")
	}
}

func TestNew_FromConfig(t *testing.T) {
	s := store.New(&store.Config{Connection: "opaque"})

	if s.Connection() != "opaque" {
		t.Errorf("got Connection %q, want %q", s.Connection(), "opaque")
	}
	if s.Len() != 0 {
		t.Errorf("got %d records, want 0", s.Len())
	}
}
