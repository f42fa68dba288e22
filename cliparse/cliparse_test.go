// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("BOT_TOKEN", "123:abc")
	os.Setenv("ADMIN_IDS", "1,2,3")
	os.Setenv("DATA_DIR", "/tmp/raffle")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BotToken != "123:abc" {
		t.Errorf("expected token from env, got %q", cfg.BotToken)
	}
	if cfg.AdminIDs != "1,2,3" {
		t.Errorf("expected admin ids from env, got %q", cfg.AdminIDs)
	}
	if cfg.DatabasePath != filepath.Join("/tmp/raffle", "bot.db") {
		t.Errorf("expected db path under data dir, got %q", cfg.DatabasePath)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Setenv("BOT_TOKEN", "123:abc")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("expected default version, got %q", cfg.Version)
	}
	if cfg.WorksheetTitle != "Лист1" {
		t.Errorf("expected default worksheet title, got %q", cfg.WorksheetTitle)
	}
	if cfg.MirrorEnabled() {
		t.Error("mirror should be disabled without a sheet id")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("BOT_TOKEN", "env-token")
	os.Setenv("DATA_DIR", "/tmp/env-dir")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-token", "cli-token", "-data", "/tmp/cli-dir", "-sheet", "sheet-id"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.BotToken != "cli-token" {
		t.Errorf("CLI should override env: got %q", cfg.BotToken)
	}
	if cfg.DataDir != "/tmp/cli-dir" {
		t.Errorf("CLI should override env: got %q", cfg.DataDir)
	}
	if !cfg.MirrorEnabled() {
		t.Error("mirror should be enabled with a sheet id")
	}
}

func TestParseFlags_MissingToken(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Fatal("expected error when BOT_TOKEN is missing")
	}
}
