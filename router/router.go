// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"

	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/handlers"
	"github.com/danielhkuo/raffle-bot/middleware"
)

// Register wires middleware and all command and message handlers onto the
// bot, and publishes the public command menu.
func Register(b *tele.Bot, h *handlers.Handler) {
	b.Use(middleware.Recover(), middleware.Logger())

	// Public surface. Ping stays open as a cheap liveness probe.
	b.Handle("/start", h.Start)
	b.Handle("/rules", h.Rules)
	b.Handle("/ping", h.Ping)
	b.Handle(tele.OnPhoto, h.OnPhoto)
	b.Handle(tele.OnText, h.OnText)
	b.Handle(tele.OnContact, h.OnContact)

	// Admin surface. Every command below refuses non-admins.
	admin := func(pattern string, fn tele.HandlerFunc) {
		b.Handle(pattern, h.AdminOnly(fn))
	}
	admin("/help_admin", h.HelpAdmin)
	admin("/version", h.BotVersion)
	admin("/stats", h.Stats)
	admin("/stores", h.Stores)
	admin("/store_add", h.StoreAdd)
	admin("/export", h.Export)
	admin("/backup", h.Backup)
	admin("/clear", h.Clear)
	admin("/set_rules", h.SetRules)
	admin("/get_rules", h.GetRules)
	admin("/random_winner", h.RandomWinner)
	admin("/winners", h.Winners)
	admin("/broadcast", h.Broadcast)
	admin("/gs_diag", h.GsDiag)
	admin("/gs_clear", h.GsClear)

	// Only the public commands go into the menu; admin commands stay
	// undiscoverable.
	err := b.SetCommands([]tele.Command{
		{Text: "start", Description: "Взяти участь у розіграші"},
		{Text: "rules", Description: "Правила розіграшу"},
	})
	if err != nil {
		slog.Warn("Failed to publish command menu", "error", err)
	}
}
