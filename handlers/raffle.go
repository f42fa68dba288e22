// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/raffle"
)

const msgSendPhotoFirst = "Щоб взяти участь у розіграші, спершу надішліть фото чека 📸"

// sendText adapts telebot's variadic Context.Send to the plain
// func(string) error signature the flow steps expect.
func sendText(c tele.Context) func(string) error {
	return func(s string) error { return c.Send(s) }
}

// OnPhoto starts a registration from a receipt photo. The largest photo
// size Telegram delivered is used.
func (h *Handler) OnPhoto(c tele.Context) error {
	s := c.Sender()
	m := c.Message()
	if s == nil || m == nil || m.Photo == nil {
		return nil
	}
	return h.Flow.TakePhoto(s.ID, s.Username, m.Photo.FileID, m.Caption, sendText(c))
}

// OnText routes free text into whatever step the user's registration is at.
// Text from a user with no registration in progress gets a nudge to send a
// photo first.
func (h *Handler) OnText(c tele.Context) error {
	s := c.Sender()
	if s == nil {
		return nil
	}

	switch h.Flow.Step(s.ID) {
	case raffle.StepName:
		return h.Flow.TakeName(s.ID, c.Text(), sendText(c))
	case raffle.StepPhone:
		return h.Flow.TakePhone(s.ID, c.Text(), sendText(c))
	case raffle.StepStore:
		ctx, cancel := sheetContext()
		defer cancel()
		return h.Flow.TakeStore(ctx, s.ID, c.Text(), sendText(c))
	default:
		return c.Send(msgSendPhotoFirst)
	}
}

// OnContact accepts a shared contact as the phone number, but only when the
// conversation is actually waiting for one.
func (h *Handler) OnContact(c tele.Context) error {
	s := c.Sender()
	m := c.Message()
	if s == nil || m == nil || m.Contact == nil {
		return nil
	}
	if h.Flow.Step(s.ID) != raffle.StepPhone {
		return nil
	}
	return h.Flow.TakeContact(s.ID, m.Contact.PhoneNumber, sendText(c))
}
