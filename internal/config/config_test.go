package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "borea.config.json")
	body := `{
		"input": {"openapi": "spec/openapi.json"},
		"output": {"clientSDK": "out/sdk", "models": "out/models", "tests": true},
		"ignores": ["*.generated.go"]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.OpenAPI != "spec/openapi.json" {
		t.Errorf("Input.OpenAPI = %q", cfg.Input.OpenAPI)
	}
	if cfg.Output.ClientSDK != "out/sdk" || cfg.Output.Models != "out/models" || !cfg.Output.Tests {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Output.XCodeSamples {
		t.Errorf("XCodeSamples should default false")
	}
	if len(cfg.Ignores) != 1 || cfg.Ignores[0] != "*.generated.go" {
		t.Errorf("Ignores = %v", cfg.Ignores)
	}
}

func TestLoadMissingFieldsLeaveZeroValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "borea.config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.OpenAPI != "" || cfg.Output.ClientSDK != "" {
		t.Errorf("expected zero-value fields, got %+v", cfg)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover on empty dir = %q, want \"\"", got)
	}

	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(dir); got != path {
		t.Errorf("Discover = %q, want %q", got, path)
	}
}

func TestValidateRejectsBadGlob(t *testing.T) {
	cfg := Config{Ignores: []string{"["}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for malformed glob")
	}
}

func TestValidateDetailedWarnsOnNonJSONInput(t *testing.T) {
	cfg := Config{Input: InputConfig{OpenAPI: "spec.yaml"}}
	result := cfg.ValidateDetailed()
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want 1 entry", result.Warnings)
	}
}
