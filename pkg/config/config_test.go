package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("default port: %q", cfg.Port)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "admin123" {
		t.Errorf("default admin credentials: %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.SchedulerInterval != 30*time.Minute {
		t.Errorf("default scheduler interval: %s", cfg.SchedulerInterval)
	}
	if cfg.UploadDir != "static/uploads" {
		t.Errorf("default upload dir: %q", cfg.UploadDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("SCHEDULER_INTERVAL_SECONDS", "600")
	t.Setenv("SITE_NAME", "Env Site")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("port: %q", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/blog" {
		t.Errorf("database url: %q", cfg.DatabaseURL)
	}
	if cfg.SecretKey != "env-secret" {
		t.Errorf("secret: %q", cfg.SecretKey)
	}
	if cfg.SchedulerInterval != 10*time.Minute {
		t.Errorf("interval: %s", cfg.SchedulerInterval)
	}
	if cfg.SiteName != "Env Site" {
		t.Errorf("site name: %q", cfg.SiteName)
	}
}

func TestInvalidIntervalFallsBack(t *testing.T) {
	t.Setenv("SCHEDULER_INTERVAL_SECONDS", "not-a-number")
	if cfg := Load(); cfg.SchedulerInterval != 30*time.Minute {
		t.Errorf("expected default interval, got %s", cfg.SchedulerInterval)
	}

	t.Setenv("SCHEDULER_INTERVAL_SECONDS", "-5")
	if cfg := Load(); cfg.SchedulerInterval != 30*time.Minute {
		t.Errorf("negative interval should fall back, got %s", cfg.SchedulerInterval)
	}
}
