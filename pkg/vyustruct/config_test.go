package vyustruct

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/output"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vyustruct.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, exists, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) returned error: %v", path, err)
		}
		if exists {
			t.Errorf("LoadConfig(%q) reported an existing file", path)
		}
		if !cfg.Merge.Prune || cfg.Output.TimeFormat != "timestamp" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[merge]
prune = false

[output]
pretty = true
time_format = "millis"

[logging]
level = "debug"
format = "json"
`)
	cfg, exists, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !exists {
		t.Error("expected the config file to be read")
	}

	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, %v", level, err)
	}

	opts := cfg.Options(nil)
	if opts.ShouldPrune() || !opts.Pretty || opts.TimeFormat != output.TimeMillis {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []string{
		"[output]\ntime_format = \"seconds\"\n",
		"[logging]\nlevel = \"loud\"\n",
		"[logging]\nformat = \"xml\"\n",
		"[merge]\nunknown = 1\n",
		"not toml",
	}
	for _, body := range tests {
		if _, _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("LoadConfig(%q) should fail", body)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if !opts.ShouldPrune() {
		t.Error("nil Prune should default to true")
	}
	if opts.timeFormat() != output.TimeTimestamp {
		t.Errorf("empty TimeFormat should default to timestamp, got %q", opts.timeFormat())
	}
	if opts.logger() == nil {
		t.Error("logger() should never be nil")
	}
}
