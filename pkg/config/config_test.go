package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 8080
backend:
  type: none
providers:
  pool:
    url: http://pool.local
    api_key: pool-key
  feeds:
    - name: feed_a
      url: http://feed-a.local/rss
models:
  a:
    name: model-a
    url: http://model-a.local
  b:
    name: model-b
    url: http://model-b.local
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Providers.Pool.URL != "http://pool.local" {
		t.Fatalf("unexpected pool url %q", cfg.Providers.Pool.URL)
	}
	if len(cfg.Providers.Feeds) != 1 || cfg.Providers.Feeds[0].Name != "feed_a" {
		t.Fatalf("unexpected feeds %+v", cfg.Providers.Feeds)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Batch.Size != 2 || cfg.Batch.InterBatchDelay != time.Second {
		t.Fatalf("unexpected batch defaults %+v", cfg.Batch)
	}
	if cfg.Signal.StrongThreshold != 0.75 || cfg.Signal.ModerateThreshold != 0.5 || cfg.Signal.WinnerThreshold != 0.8 {
		t.Fatalf("unexpected signal defaults %+v", cfg.Signal)
	}
	if cfg.Models.MaxArticles != 10 {
		t.Fatalf("unexpected max articles %d", cfg.Models.MaxArticles)
	}
}

func TestLoadRejectsMissingModels(t *testing.T) {
	bad := `
environment: test
backend:
  type: none
providers:
  pool:
    url: http://pool.local
models:
  a:
    url: http://model-a.local
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("expected validation error for missing model B")
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	bad := `
environment: test
backend:
  type: postgres
providers:
  pool:
    url: http://pool.local
models:
  a:
    url: http://a.local
  b:
    url: http://b.local
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("expected validation error for unknown backend")
	}
}

func TestLoadRejectsInvertedThresholds(t *testing.T) {
	bad := validYAML + `
signal:
  strong_threshold: 0.4
  moderate_threshold: 0.6
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("expected validation error for inverted thresholds")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("POOL_API_KEY", "env-pool-key")
	t.Setenv("MODEL_A_API_KEY", "env-a-key")
	t.Setenv("BACKEND", "none")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Providers.Pool.APIKey != "env-pool-key" {
		t.Fatalf("pool key not overridden: %q", cfg.Providers.Pool.APIKey)
	}
	if cfg.Models.A.APIKey != "env-a-key" {
		t.Fatalf("model key not overridden: %q", cfg.Models.A.APIKey)
	}
}
