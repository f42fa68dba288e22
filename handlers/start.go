// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/db"
)

const (
	msgWelcome = "Привіт! 👋\nЦе бот розіграшу призів.\n\n" +
		"Щоб взяти участь, надішліть фото чека про покупку 📸, " +
		"а далі бот запитає ваше ім'я, телефон і номер магазину."
	msgNoRules = "Правила розіграшу ще не опубліковані. Завітайте пізніше!"
)

// Start greets the user, shows the rules if set, and asks for a receipt
// photo. A /start mid-conversation also drops any unfinished registration.
func (h *Handler) Start(c tele.Context) error {
	if s := c.Sender(); s != nil {
		h.Flow.Cancel(s.ID)
	}

	if err := c.Send(msgWelcome); err != nil {
		return err
	}

	rules, err := db.GetRules(h.DB)
	if err != nil {
		return err
	}
	if rules != "" {
		if err := c.Send("📋 Правила:\n\n" + escapeHTML(rules)); err != nil {
			return err
		}
	}
	return nil
}

// Rules shows the current raffle rules to anyone.
func (h *Handler) Rules(c tele.Context) error {
	rules, err := db.GetRules(h.DB)
	if err != nil {
		return err
	}
	if rules == "" {
		return c.Send(msgNoRules)
	}
	return c.Send("📋 Правила:\n\n" + escapeHTML(rules))
}
