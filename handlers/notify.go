// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"

	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/auth"
)

// AdminNotifier fans new-registration summaries out to every admin,
// attaching the receipt photo when there is one. Delivery is best-effort.
type AdminNotifier struct {
	Bot    *tele.Bot
	Admins *auth.AdminList
}

// NotifyAdmins sends the summary (and photo, if any) to each admin.
func (n *AdminNotifier) NotifyAdmins(summary, photoID string) {
	for _, id := range n.Admins.IDs() {
		var err error
		if photoID != "" {
			photo := &tele.Photo{
				File:    tele.File{FileID: photoID},
				Caption: summary,
			}
			_, err = n.Bot.Send(tele.ChatID(id), photo)
		} else {
			_, err = n.Bot.Send(tele.ChatID(id), summary)
		}
		if err != nil {
			slog.Warn("Failed to notify admin", "admin_id", id, "error", err)
		}
	}
}
