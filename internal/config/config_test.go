package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Size != 10 || cfg.App.Mines != 12 {
		t.Fatalf("expected 10x10 with 12 mines, got %dx%d with %d", cfg.App.Size, cfg.App.Size, cfg.App.Mines)
	}
	if !cfg.App.ShowFooter || !cfg.App.Mouse {
		t.Fatalf("expected footer and mouse enabled by default, got %#v", cfg.App)
	}
	if cfg.Logging.FilePath != defaultLogFile || cfg.Logging.Trace {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	data := "size: 16\nmines: 40\nseed: 7\nfooter: false\nlog_file: from-file.log\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	env := []string{
		"SWEEPER_CONFIG=" + path,
		"SWEEPER_MINES=30",
		"SWEEPER_TRACE=true",
		"SWEEPER_WIDTH=not-a-number",
	}
	cfg, err := LoadArgs([]string{"--mines", "20", "-height=30"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Size != 16 {
		t.Fatalf("expected size from file, got %d", cfg.App.Size)
	}
	if cfg.App.Mines != 20 {
		t.Fatalf("expected flag to beat env and file, got %d", cfg.App.Mines)
	}
	if cfg.App.Seed != 7 {
		t.Fatalf("expected seed from file, got %d", cfg.App.Seed)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by file")
	}
	if cfg.App.Width != 0 || cfg.App.Height != 30 {
		t.Fatalf("expected width fallback and height flag, got %d/%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "from-file.log" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
	if cfg.Flags["config"] != path || cfg.Flags["mines"] != "20" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}

func TestConfigFlagOverridesEnvPath(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	flagPath := filepath.Join(dir, "flag.yaml")
	if err := os.WriteFile(envPath, []byte("size: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(flagPath, []byte("size: 8\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs([]string{"--config=" + flagPath}, []string{"SWEEPER_CONFIG=" + envPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Size != 8 {
		t.Fatalf("expected size from flag config file, got %d", cfg.App.Size)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("size: [1, 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArgs([]string{"--config", bad}, nil); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
	if _, err := LoadArgs([]string{"--unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateRejectsImpossibleBoards(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"--size", "0"}, want: "size"},
		{args: []string{"--size", "41"}, want: "size"},
		{args: []string{"--size", "3", "--mines", "9"}, want: "mines"},
		{args: []string{"--mines", "-1"}, want: "mines"},
		{args: []string{"--width", "-1"}, want: "width"},
		{args: []string{"--height", "-1"}, want: "height"},
	}
	for _, tt := range tests {
		cfg, err := LoadArgs(tt.args, nil)
		if err != nil {
			t.Fatalf("load %v: %v", tt.args, err)
		}
		err = Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("expected %s error for %v, got %v", tt.want, tt.args, err)
		}
	}
}
