// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/raffle-bot/db"
	"github.com/danielhkuo/raffle-bot/models"
)

const (
	msgAskName    = "Дякуємо за фото чека! 📸\nНапишіть, будь ласка, ваше ім'я."
	msgAskPhone   = "Тепер надішліть ваш номер телефону.\nМожна скористатися кнопкою «Поділитися контактом» 📱"
	msgAskStore   = "Вкажіть номер магазину, в якому ви зробили покупку (числом)."
	msgBadName    = "Будь ласка, введіть ім'я текстом."
	msgBadPhone   = "Схоже, це не номер телефону. Спробуйте ще раз, наприклад: +380501234567"
	msgBadStore   = "Будь ласка, надішліть номер магазину числом, наприклад: 8"
	msgSaveFailed = "😔 Сталася помилка під час збереження заявки. Спробуйте ще раз трохи пізніше."
)

// Mirror appends a finished registration to an external sheet and returns
// the sequence number it got there.
type Mirror interface {
	AppendParticipant(ctx context.Context, p models.Participant) (int, error)
}

// Notifier fans a new-registration summary out to the admins.
type Notifier interface {
	NotifyAdmins(summary, photoID string)
}

// Flow drives the registration conversation. It is transport-independent:
// handlers pass user input in and a send callback for replies, so the same
// flow can run under a real bot or a test.
type Flow struct {
	db       *sql.DB
	states   *States
	mirror   Mirror   // nil when the sheet mirror is disabled
	notifier Notifier // nil when nobody should be notified
}

// NewFlow wires a Flow. mirror and notifier may be nil.
func NewFlow(database *sql.DB, states *States, mirror Mirror, notifier Notifier) *Flow {
	return &Flow{db: database, states: states, mirror: mirror, notifier: notifier}
}

// Step returns the user's current conversation step.
func (f *Flow) Step(userID int64) Step {
	return f.states.Get(userID).Step
}

// TakePhoto starts (or restarts) a registration from a receipt photo.
// A photo sent mid-conversation discards the previous scratch.
func (f *Flow) TakePhoto(userID int64, username, photoID, caption string, send func(string) error) error {
	f.states.Set(userID, Scratch{
		Step:     StepName,
		Username: username,
		PhotoID:  photoID,
		Caption:  caption,
	})
	return send(msgAskName)
}

// TakeName records the participant's name and advances to the phone step.
func (f *Flow) TakeName(userID int64, text string, send func(string) error) error {
	name := strings.TrimSpace(text)
	if name == "" {
		return send(msgBadName)
	}

	sc := f.states.Get(userID)
	sc.FullName = name
	sc.Step = StepPhone
	f.states.Set(userID, sc)
	return send(msgAskPhone)
}

// TakePhone validates and records a typed phone number. An invalid number
// re-prompts without advancing.
func (f *Flow) TakePhone(userID int64, text string, send func(string) error) error {
	if !ValidPhone(text) {
		return send(msgBadPhone)
	}
	return f.acceptPhone(userID, CleanPhone(text), send)
}

// TakeContact records a phone number shared via a Telegram contact.
// Contact numbers come from the client already well-formed, so no
// validation is applied beyond normalization.
func (f *Flow) TakeContact(userID int64, phone string, send func(string) error) error {
	return f.acceptPhone(userID, CleanPhone(phone), send)
}

func (f *Flow) acceptPhone(userID int64, phone string, send func(string) error) error {
	sc := f.states.Get(userID)
	sc.Phone = phone
	sc.Step = StepStore
	f.states.Set(userID, sc)
	return send(msgAskStore)
}

// TakeStore finishes the registration: the store number is parsed, the
// participant is persisted, mirrored to the sheet best-effort, the user gets
// a confirmation and the admins a summary. On a storage error the scratch is
// kept so the user can retry the store number.
func (f *Flow) TakeStore(ctx context.Context, userID int64, text string, send func(string) error) error {
	text = strings.TrimSpace(text)
	if !digitsOnly(text) {
		return send(msgBadStore)
	}
	storeNo, err := strconv.Atoi(text)
	if err != nil {
		return send(msgBadStore)
	}

	sc := f.states.Get(userID)

	p := models.NewParticipant{
		TgUserID: &userID,
		Username: sc.Username,
		FullName: sc.FullName,
		Phone:    sc.Phone,
		StoreNo:  &storeNo,
	}
	if sc.PhotoID != "" {
		p.PhotoID = &sc.PhotoID
	}

	id, err := db.AddParticipant(f.db, p)
	if err != nil {
		slog.Error("Failed to save participant", "user_id", userID, "error", err)
		if sendErr := send(msgSaveFailed); sendErr != nil {
			return sendErr
		}
		return err
	}

	// The sheet is a mirror, not the source of truth: a failure here is
	// logged and the registration still succeeds.
	if f.mirror != nil {
		if _, err := f.mirror.AppendParticipant(ctx, models.Participant{
			ID:        id,
			TgUserID:  &userID,
			Username:  sc.Username,
			FullName:  sc.FullName,
			Phone:     sc.Phone,
			StoreNo:   &storeNo,
			CreatedAt: time.Now(),
		}); err != nil {
			slog.Warn("Failed to mirror participant to sheet", "participant_id", id, "error", err)
		}
	}

	confirmation := fmt.Sprintf(
		"✅ Вітаємо! Вашу заявку прийнято.\nВаш номер учасника: %d\nБажаємо удачі! 🍀", id)
	if err := send(confirmation); err != nil {
		return err
	}

	if f.notifier != nil {
		summary := fmt.Sprintf(
			"🆕 Нова заявка №%d\nІм'я: %s\nТелефон: %s\nМагазин: №%d\nTelegram: %s",
			id, escapeText(sc.FullName), spoilerText(sc.Phone), storeNo, spoilerText(handleOrDash(sc.Username)))
		f.notifier.NotifyAdmins(summary, sc.PhotoID)
	}

	f.states.Clear(userID)
	return nil
}

// Cancel drops an unfinished registration, if any.
func (f *Flow) Cancel(userID int64) {
	f.states.Clear(userID)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText makes user-supplied text safe for the HTML parse mode the bot
// runs with.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// spoilerText hides contact details behind a tap in the admin summary.
func spoilerText(s string) string {
	return "<tg-spoiler>" + escapeText(s) + "</tg-spoiler>"
}

func handleOrDash(username string) string {
	if username == "" {
		return "—"
	}
	return "@" + username
}

// digitsOnly reports whether s is non-empty and consists of ASCII digits.
// Signs are rejected; a store number is a plain label, not an integer
// expression.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
