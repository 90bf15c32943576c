package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "app.yaml", `
adwords:
  email: a@b.com
  version: v13
  services: [Campaign, AdGroup]
  timeouts:
    call: 10s
other:
  key: x
`)

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	want := map[string]string{
		"adwords.email":         "a@b.com",
		"adwords.version":       "v13",
		"adwords.services":      "Campaign,AdGroup",
		"adwords.timeouts.call": "10s",
		"other.key":             "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "app.toml", `
[adwords]
email = "a@b.com"
debug = true
cache_dir = "/tmp/x"

[other]
key = "x"
`)

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	want := map[string]string{
		"adwords.email":     "a@b.com",
		"adwords.debug":     "true",
		"adwords.cache_dir": "/tmp/x",
		"other.key":         "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

// TestLoadFile_FeedsFromMap verifies the full file -> mapping -> Config path.
func TestLoadFile_FeedsFromMap(t *testing.T) {
	path := writeFile(t, "app.yml", `
adwords:
  email: a@b.com
  developer_token: dev
  timeouts:
    fetch: 2s
`)
	conf, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	cfg, err := FromMap(conf, DefaultPrefix, nil)
	if err != nil {
		t.Fatalf("FromMap returned error: %v", err)
	}
	if cfg.Email != "a@b.com" || cfg.DeveloperToken != "dev" || cfg.Timeouts.Fetch != 2*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "app.ini", "a=b")); err == nil {
			t.Fatal("expected error for unsupported extension")
		}
	})
	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "bad.yaml", "adwords: [unterminated")); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
