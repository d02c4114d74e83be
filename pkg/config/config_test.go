package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.App.ServiceName != "envelope-demo" {
		t.Fatalf("unexpected service name %q", cfg.App.ServiceName)
	}
	if cfg.Demo.SuccessStatus != 200 || cfg.Demo.ErrorStatus != 500 {
		t.Fatalf("unexpected default statuses %d/%d", cfg.Demo.SuccessStatus, cfg.Demo.ErrorStatus)
	}
	if !cfg.Demo.Pretty {
		t.Fatal("expected pretty output by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "PROD")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSuccessStatus, "201")
	t.Setenv(EnvErrorStatus, "422")
	t.Setenv(EnvPretty, "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.App.LogLevel)
	}
	if cfg.Demo.SuccessStatus != 201 || cfg.Demo.ErrorStatus != 422 {
		t.Fatalf("unexpected statuses %d/%d", cfg.Demo.SuccessStatus, cfg.Demo.ErrorStatus)
	}
	if cfg.Demo.Pretty {
		t.Fatal("expected pretty output disabled")
	}
}

func TestLoad_RejectsInvalidStatus(t *testing.T) {
	t.Setenv(EnvErrorStatus, "42")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid status to return an error")
	}
}

func TestLoad_RejectsMalformedStatus(t *testing.T) {
	t.Setenv(EnvSuccessStatus, "ok")

	if _, err := Load(); err == nil {
		t.Fatal("expected malformed status to return an error")
	}
}
