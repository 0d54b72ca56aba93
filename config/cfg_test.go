package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigurationNoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("Logging.Console.Level = %q, want normal", cfg.Logging.Console.Level)
	}
	if cfg.Logging.File.Level != "none" {
		t.Errorf("Logging.File.Level = %q, want none", cfg.Logging.File.Level)
	}
}

func TestLoadConfigurationWithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
logging:
  console:
    level: debug
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Logging.Console.Level != "debug" {
		t.Errorf("Logging.Console.Level = %q, want debug", cfg.Logging.Console.Level)
	}
	if cfg.Reporting.Destination != "/tmp/test-report.zip" {
		t.Errorf("Reporting.Destination = %q, want /tmp/test-report.zip", cfg.Reporting.Destination)
	}
}

func TestLoadConfigurationNonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadConfigurationInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nlogging:\n  console\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfigurationUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nunknown_field: value\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadConfigurationValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "badversion.yaml")
	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected validation error for unsupported version")
	}
}

func TestLoadConfigurationBadLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "badlevel.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nlogging:\n  console:\n    level: verbose\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected validation error for unsupported level")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}
	cfg := &Config{}
	if err := unmarshalConfig(data, cfg); err != nil {
		t.Errorf("prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{Version: 1}
	cfg.Logging.Console.Level = "normal"
	cfg.Logging.File.Level = "none"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	cfg2 := &Config{}
	if err := unmarshalConfig(data, cfg2); err != nil {
		t.Errorf("dumped config cannot be loaded: %v", err)
	}
	if cfg2.Version != cfg.Version {
		t.Errorf("version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{}
		if err := unmarshalConfig([]byte("version: 1"), cfg); err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}
		if cfg.Version != 1 {
			t.Errorf("Version = %d, want 1", cfg.Version)
		}
	})
	t.Run("invalid yaml", func(t *testing.T) {
		cfg := &Config{}
		if err := unmarshalConfig([]byte("invalid: [yaml"), cfg); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestLoadConfigurationMergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nreporting:\n  destination: /tmp/out.zip\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Reporting.Destination != "/tmp/out.zip" {
		t.Errorf("Reporting.Destination = %q, want /tmp/out.zip", cfg.Reporting.Destination)
	}
	// unspecified logging section keeps the embedded defaults
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("Logging.Console.Level = %q, want normal to survive from defaults", cfg.Logging.Console.Level)
	}
}
