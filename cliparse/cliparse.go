// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	BotToken        string
	AdminIDs        string // comma-separated Telegram user IDs
	DataDir         string
	DatabasePath    string
	Version         string
	SheetID         string
	WorksheetTitle  string
	CredentialsFile string
}

// ParseFlags validates flags and resolves the data directory layout
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("raffle-bot", flag.ContinueOnError)

	// Paths and metadata (can be CLI args or env)
	fs.StringVar(&cfg.DataDir, "data", "", "Data directory (db + backups)")
	fs.StringVar(&cfg.DatabasePath, "db", "", "SQLite database path")
	fs.StringVar(&cfg.Version, "version", "", "Bot version string")

	// Google Sheets mirror (optional)
	fs.StringVar(&cfg.SheetID, "sheet", "", "Google Sheet ID for the mirror")
	fs.StringVar(&cfg.WorksheetTitle, "worksheet", "", "Worksheet title inside the sheet")
	fs.StringVar(&cfg.CredentialsFile, "creds", "", "Service account credentials file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.BotToken, "token", "", "Telegram bot token (prefer env)")
	fs.StringVar(&cfg.AdminIDs, "admins", "", "Comma-separated admin user IDs (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("BOT_TOKEN")
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("bot token required (use -token or BOT_TOKEN env)")
	}

	if cfg.AdminIDs == "" {
		cfg.AdminIDs = os.Getenv("ADMIN_IDS")
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "data" // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
		if cfg.DatabasePath == "" {
			cfg.DatabasePath = filepath.Join(cfg.DataDir, "bot.db")
		}
	}

	if cfg.Version == "" {
		cfg.Version = os.Getenv("BOT_VERSION")
		if cfg.Version == "" {
			cfg.Version = "1.0.0"
		}
	}

	// Mirror settings; an empty SheetID disables the mirror entirely
	if cfg.SheetID == "" {
		cfg.SheetID = os.Getenv("GOOGLE_SHEET_ID")
	}
	if cfg.WorksheetTitle == "" {
		cfg.WorksheetTitle = os.Getenv("GOOGLE_WORKSHEET_TITLE")
		if cfg.WorksheetTitle == "" {
			cfg.WorksheetTitle = "Лист1"
		}
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if cfg.CredentialsFile == "" {
			cfg.CredentialsFile = "credentials.json"
		}
	}

	return cfg, nil
}

// MirrorEnabled reports whether the Google Sheets mirror is configured.
func (c Config) MirrorEnabled() bool {
	return c.SheetID != ""
}
