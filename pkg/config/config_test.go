package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Dess457/search-server/internal/document"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.DefaultStatus() != document.StatusActive {
		t.Fatalf("default status = %v", cfg.DefaultStatus())
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics should default to enabled")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
engine:
  stopWords: [and, in]
  stopWordsText: "on  at"
  corpus: docs.yaml
search:
  defaultStatus: irrelevant
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"and", "in", "on", "at"}, cfg.Engine.AllStopWords()); diff != "" {
		t.Fatalf("stop words mismatch (-want +got):\n%s", diff)
	}
	if cfg.Engine.Corpus != "docs.yaml" || cfg.DefaultStatus() != document.StatusIrrelevant {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[engine]
stopWords = ["and"]

[logging]
format = "pretty"

[metrics]
enabled = false
dumpOnExit = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"and"}, cfg.Engine.AllStopWords()); diff != "" {
		t.Fatalf("stop words mismatch:\n%s", diff)
	}
	if cfg.Logging.Format != "pretty" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Metrics.Enabled || !cfg.Metrics.DumpOnExit {
		t.Fatalf("unexpected metrics %+v", cfg.Metrics)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "config.json", "{}")); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "search:\n  defaultStatus: archived\n")); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if _, err := Load(writeFile(t, "bad.toml", "[logging]\nformat = \"xml\"\n")); err == nil {
		t.Fatalf("expected error for unknown log format")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SS_STOP_WORDS", "a the")
	t.Setenv("SS_LOGGING_FORMAT", "json")
	t.Setenv("SS_DEFAULT_STATUS", "REMOVED")
	t.Setenv("SS_METRICS_ENABLED", "false")

	path := writeFile(t, "config.yaml", "engine:\n  stopWords: [and]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "the"}, cfg.Engine.AllStopWords()); diff != "" {
		t.Fatalf("stop words mismatch:\n%s", diff)
	}
	if cfg.Logging.Format != "json" || cfg.DefaultStatus() != document.StatusRemoved || cfg.Metrics.Enabled {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}
