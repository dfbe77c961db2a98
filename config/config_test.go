package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing config file, got error: %v", err)
	}

	if cfg.ProbeBackend != ProbeFFmpeg {
		t.Errorf("Expected default probe backend ffmpeg, got %q", cfg.ProbeBackend)
	}
	if cfg.UploadBufferSize <= 0 {
		t.Errorf("Expected a positive default upload buffer size, got %d", cfg.UploadBufferSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected the default config to validate, got %v", err)
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.ProbeBackend = ProbeOpenCV
	cfg.UploadBufferSize = 4
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.ProbeBackend != ProbeOpenCV {
		t.Errorf("Expected probe backend opencv, got %q", loaded.ProbeBackend)
	}
	if loaded.UploadBufferSize != 4 {
		t.Errorf("Expected upload buffer size 4, got %d", loaded.UploadBufferSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProbeBackend = "quicktime"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for an unknown probe backend")
	}

	cfg = DefaultConfig()
	cfg.UploadBufferSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for a zero upload buffer size")
	}

	cfg = DefaultConfig()
	cfg.DrainTimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for a negative drain timeout")
	}
}

func TestOverride(t *testing.T) {
	cfg := DefaultConfig()

	backend := ProbeOpenCV
	empty := ""
	cfg.Override(Overrides{
		ProbeBackend: &backend,
		LogLevel:     &empty, // empty overrides are ignored
	})

	if cfg.ProbeBackend != ProbeOpenCV {
		t.Errorf("Expected probe backend override, got %q", cfg.ProbeBackend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level untouched by empty override, got %q", cfg.LogLevel)
	}
}
