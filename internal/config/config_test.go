package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		if err == nil {
			t.Fatal("explicit missing file must be an error")
		}
		_ = cfg
	})

	t.Run("empty path falls back to defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			if err := os.Chdir(wd); err != nil {
				t.Fatal(err)
			}
		})

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error = %v", err)
		}
		if cfg.OutputDir != "output" || cfg.LogLevel != "info" {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "parselit.yml")
		content := "output_dir: /tmp/tables\nlog_level: debug\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OutputDir != "/tmp/tables" {
			t.Errorf("OutputDir = %q", cfg.OutputDir)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q", cfg.LogLevel)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "parselit.yml")
		if err := os.WriteFile(path, []byte("output_dir: from_file\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(EnvOutputDir, "from_env")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OutputDir != "from_env" {
			t.Errorf("OutputDir = %q, want from_env", cfg.OutputDir)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "parselit.yml")
		if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for invalid yaml")
		}
	})
}
