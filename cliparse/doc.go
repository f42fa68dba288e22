// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BotToken: Telegram bot token (required)
  - AdminIDs: comma-separated admin user IDs
  - DataDir: data directory for the database file (default: data)
  - DatabasePath: SQLite file path (default: <DataDir>/bot.db)
  - Version: bot version string reported by /version
  - SheetID, WorksheetTitle, CredentialsFile: Google Sheets mirror settings

# CLI Flags

	-token      Telegram bot token
	-admins     Comma-separated admin user IDs
	-data       Data directory
	-db         SQLite database path
	-version    Bot version string
	-sheet      Google Sheet ID
	-worksheet  Worksheet title
	-creds      Service account credentials file

# Environment Variables

Flags fall back to environment variables:

	BOT_TOKEN                      → -token
	ADMIN_IDS                      → -admins
	DATA_DIR                       → -data
	DATABASE_PATH                  → -db
	BOT_VERSION                    → -version
	GOOGLE_SHEET_ID                → -sheet
	GOOGLE_WORKSHEET_TITLE         → -worksheet
	GOOGLE_APPLICATION_CREDENTIALS → -creds

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if BOT_TOKEN is missing; the process must not
start without it. The Google Sheets mirror is optional: when GOOGLE_SHEET_ID
is empty, MirrorEnabled reports false and the bot runs without mirroring.
*/
package cliparse
