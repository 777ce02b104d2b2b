package daemon

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("STUDYQUEST_HOME", t.TempDir())
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 3001 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 3001)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus = false, want true by default")
	}
	if cfg.Storage.Dir == "" {
		t.Error("Storage.Dir is empty")
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("STUDYQUEST_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 3001 {
		t.Errorf("API.Port = %d, want default 3001", cfg.API.Port)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("STUDYQUEST_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 8080
	cfg.Web.Dir = "/srv/studyquest/web"
	cfg.Telemetry.Prometheus = false

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", loaded.API.Port)
	}
	if loaded.Web.Dir != "/srv/studyquest/web" {
		t.Errorf("Web.Dir = %q", loaded.Web.Dir)
	}
	if loaded.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus = true, want false")
	}
}

func TestHome_HonorsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STUDYQUEST_HOME", dir)

	if got := Home(); got != dir {
		t.Errorf("Home() = %q, want %q", got, dir)
	}
}
