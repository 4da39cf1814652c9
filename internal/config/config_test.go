package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"luna/internal/config"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "luna.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Output.Format != "tree" {
		t.Fatalf("expected default format tree, got %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Fatalf("expected default color auto, got %q", cfg.Output.Color)
	}
	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".luna" {
		t.Fatalf("expected default extensions [.luna], got %v", cfg.Watch.Extensions)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `[output]
format = "json"
color = "never"

[watch]
extensions = [".luna", ".lua"]
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "never" {
		t.Fatalf("expected color never, got %q", cfg.Output.Color)
	}
	if len(cfg.Watch.Extensions) != 2 {
		t.Fatalf("expected 2 extensions, got %v", cfg.Watch.Extensions)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `[output]
format = "json"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Fatalf("expected color auto from defaults, got %q", cfg.Output.Color)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := writeFile(t, `[output]
format = "yaml"
`)

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeFile(t, `[output]
color = "sometimes"
`)

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for invalid color mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := config.Discover("")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if cfg.Output.Format != "tree" {
		t.Fatalf("expected defaults, got format %q", cfg.Output.Format)
	}
}
