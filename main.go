// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	tele "gopkg.in/telebot.v3"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/raffle-bot/auth"
	"github.com/danielhkuo/raffle-bot/cliparse"
	"github.com/danielhkuo/raffle-bot/db"
	"github.com/danielhkuo/raffle-bot/handlers"
	"github.com/danielhkuo/raffle-bot/raffle"
	"github.com/danielhkuo/raffle-bot/router"
	"github.com/danielhkuo/raffle-bot/sheets"
)

func main() {
	// Missing .env is fine; real deployments set environment variables.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	admins, err := auth.ParseAdminIDs(cfg.AdminIDs)
	if err != nil {
		slog.Error("Invalid admin list", "error", err)
		os.Exit(1)
	}
	if admins.Len() == 0 {
		slog.Warn("No admins configured; admin commands will refuse everyone")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("Failed to create data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	database, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.CreateSchema(database); err != nil {
		slog.Error("Failed to create schema", "error", err)
		os.Exit(1)
	}

	var sheet *sheets.Client
	if cfg.MirrorEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		sheet, err = sheets.New(ctx, cfg.CredentialsFile, cfg.SheetID, cfg.WorksheetTitle)
		if err != nil {
			slog.Error("Failed to connect to Google Sheets", "error", err)
			cancel()
			os.Exit(1)
		}
		if err := sheet.EnsureHeader(ctx); err != nil {
			slog.Warn("Failed to ensure sheet header", "error", err)
		}
		cancel()
		slog.Info("Google Sheets mirror enabled", "sheet_id", cfg.SheetID, "worksheet", cfg.WorksheetTitle)
	} else {
		slog.Info("Google Sheets mirror disabled")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.BotToken,
		Poller:    &tele.LongPoller{Timeout: 30 * time.Second},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	notifier := &handlers.AdminNotifier{Bot: bot, Admins: admins}
	flow := raffle.NewFlow(database, raffle.NewStates(), mirrorOrNil(sheet), notifier)

	h := &handlers.Handler{
		DB:      database,
		Bot:     bot,
		Admins:  admins,
		Flow:    flow,
		Sheet:   sheet,
		Version: cfg.Version,
		DBPath:  cfg.DatabasePath,
		Started: time.Now(),
	}
	router.Register(bot, h)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-stop
		slog.Info("Shutting down", "signal", sig.String())
		bot.Stop()
	}()

	slog.Info("Bot started", "version", cfg.Version, "database", cfg.DatabasePath, "admins", admins.Len())
	bot.Start()
	slog.Info("Bot stopped")
}

// mirrorOrNil keeps the raffle.Mirror interface nil when the sheet client
// is nil; a typed nil would defeat the flow's nil check.
func mirrorOrNil(c *sheets.Client) raffle.Mirror {
	if c == nil {
		return nil
	}
	return c
}
