// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/auth"
	"github.com/danielhkuo/raffle-bot/raffle"
	"github.com/danielhkuo/raffle-bot/sheets"
)

const msgAdminsOnly = "🚫 Тільки для адмінів."

// Handler carries everything the command handlers need. Sheet is nil when
// the spreadsheet mirror is disabled.
type Handler struct {
	DB      *sql.DB
	Bot     *tele.Bot
	Admins  *auth.AdminList
	Flow    *raffle.Flow
	Sheet   *sheets.Client
	Version string
	DBPath  string
	Started time.Time
}

// isAdmin checks the sender against the admin list.
func (h *Handler) isAdmin(c tele.Context) bool {
	s := c.Sender()
	return s != nil && h.Admins.IsAdmin(s.ID)
}

// AdminOnly wraps a handler so non-admins get a refusal instead.
func (h *Handler) AdminOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if !h.isAdmin(c) {
			return c.Send(msgAdminsOnly)
		}
		return next(c)
	}
}

// sheetContext bounds a Google Sheets call so a slow API cannot stall the
// update loop.
func sheetContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeHTML makes user-supplied text safe for ParseMode HTML.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// spoiler hides text behind a tap, used for winner phone numbers in
// announcements.
func spoiler(s string) string {
	return "<tg-spoiler>" + escapeHTML(s) + "</tg-spoiler>"
}
