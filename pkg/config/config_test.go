package config

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "eventbook" {
		t.Errorf("App.Name = %v, want eventbook", cfg.App.Name)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("Server.Port = %v, want 4000", cfg.Server.Port)
	}
	if cfg.JWT.TokenTTL.Hours() != 168 {
		t.Errorf("JWT.TokenTTL = %v, want 168h", cfg.JWT.TokenTTL)
	}

	// The default log level must be a real zap level, not an
	// environment name, or the logger silently ignores it.
	if cfg.App.LogLevel == "" {
		t.Fatal("App.LogLevel default should be set")
	}
	if _, err := zapcore.ParseLevel(cfg.App.LogLevel); err != nil {
		t.Errorf("App.LogLevel %q is not a parseable zap level: %v", cfg.App.LogLevel, err)
	}
}
