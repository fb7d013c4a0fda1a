package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestInit_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, zap.NewNop()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if Conf.Server.Port != "8080" {
		t.Errorf("server.port = %q, want 8080", Conf.Server.Port)
	}
	if Conf.Engine.BranchTimeout() != 2*time.Second {
		t.Errorf("branch timeout = %v, want 2s", Conf.Engine.BranchTimeout())
	}
	if Conf.Engine.TrendWindowDays != 7 {
		t.Errorf("trend window = %d, want 7", Conf.Engine.TrendWindowDays)
	}
	if Conf.LLM.Enabled {
		t.Error("llm should be disabled by default")
	}
}

func TestInit_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: \"9090\"\nengine:\n  branch_timeout_ms: 500\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(dir, zap.NewNop()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if Conf.Server.Port != "9090" {
		t.Errorf("server.port = %q, want 9090", Conf.Server.Port)
	}
	if Conf.Engine.BranchTimeout() != 500*time.Millisecond {
		t.Errorf("branch timeout = %v, want 500ms", Conf.Engine.BranchTimeout())
	}
	// Untouched keys keep their defaults.
	if Conf.Logging.MaxSize != 10 {
		t.Errorf("logging.max_size = %d, want default 10", Conf.Logging.MaxSize)
	}
}

func TestInit_EnvOverride(t *testing.T) {
	t.Setenv("MATHPAL_SERVER_PORT", "7070")
	dir := t.TempDir()
	if err := Init(dir, zap.NewNop()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if Conf.Server.Port != "7070" {
		t.Errorf("server.port = %q, want env override 7070", Conf.Server.Port)
	}
}
