package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DOCCLAMP_API_KEY", "DEFAULT_WORD_LIMIT", "MAX_WORD_LIMIT", "WORKER_COUNT", "JOB_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected port 8091, got %q", cfg.Port)
	}
	if cfg.DefaultWordLimit != 100 {
		t.Errorf("expected default limit 100, got %d", cfg.DefaultWordLimit)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %s", cfg.JobTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DEFAULT_WORD_LIMIT", "0")
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("JOB_TTL", "90s")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.DefaultWordLimit != 0 {
		t.Errorf("expected zero word limit to be kept, got %d", cfg.DefaultWordLimit)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected invalid worker count to fall back to 4, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 90*time.Second {
		t.Errorf("expected 90s TTL, got %s", cfg.JobTTL)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
}

func TestValidate_LimitOrdering(t *testing.T) {
	cfg := Config{Port: "1", DefaultWordLimit: 500, MaxWordLimit: 100}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("DOCCLAMP_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCCLAMP_TEST_VALUE", "")
	os.Unsetenv("DOCCLAMP_TEST_VALUE")

	loaded, err := LoadEnv(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Errorf("expected only %q loaded, got %v", path, loaded)
	}
	if got := os.Getenv("DOCCLAMP_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected value from file, got %q", got)
	}
}
