// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	tele "gopkg.in/telebot.v3"

	"github.com/danielhkuo/raffle-bot/db"
	"github.com/danielhkuo/raffle-bot/export"
	"github.com/danielhkuo/raffle-bot/models"
)

const helpAdminText = `🛠 Команди адміністратора:

/stats — статистика заявок
/stores — заявки по магазинах
/store_add <№> <назва> — додати/перейменувати магазин
/random_winner — обрати переможця
/winners — останні переможці
/broadcast <текст> — розсилка всім учасникам
/export — вивантажити учасників у Excel
/backup — копія бази даних
/set_rules <текст> — встановити правила
/get_rules — показати правила
/clear так — очистити базу заявок
/gs_diag — діагностика Google-таблиці
/gs_clear — очистити Google-таблицю
/ping — перевірка зв'язку
/version — версія бота`

// HelpAdmin lists the admin commands.
func (h *Handler) HelpAdmin(c tele.Context) error {
	return c.Send(helpAdminText)
}

// Ping answers with uptime.
func (h *Handler) Ping(c tele.Context) error {
	up := time.Since(h.Started).Round(time.Second)
	return c.Send(fmt.Sprintf("🏓 Понг! Бот працює %s.", up))
}

// BotVersion reports the configured version string.
func (h *Handler) BotVersion(c tele.Context) error {
	return c.Send("Версія бота: " + h.Version)
}

// Stats summarizes the raffle: totals, today's registrations, winners and
// whether rules are published.
func (h *Handler) Stats(c tele.Context) error {
	counts, err := db.TableCounts(h.DB)
	if err != nil {
		return err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := db.CountParticipantsSince(h.DB, midnight)
	if err != nil {
		return err
	}

	rulesState := "❌ не встановлені"
	if counts.Rules > 0 {
		rulesState = "✅ встановлені"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика:\nУчасників: %s\nСьогодні: %s\nПереможців: %s\nРядків правил: %s\nПравила: %s\nБаза: %s",
		humanize.Comma(int64(counts.Participants)),
		humanize.Comma(int64(today)),
		humanize.Comma(int64(counts.Winners)),
		humanize.Comma(int64(counts.Rules)),
		rulesState,
		escapeHTML(h.DBPath),
	)

	if h.Sheet != nil {
		ctx, cancel := sheetContext()
		n, err := h.Sheet.RowCount(ctx)
		cancel()
		if err != nil {
			fmt.Fprintf(&b, "\nРядків у таблиці: недоступно (%s)", escapeHTML(err.Error()))
		} else {
			fmt.Fprintf(&b, "\nРядків у таблиці: %s", humanize.Comma(int64(n)))
		}
	}
	return c.Send(b.String())
}

// Stores shows per-store registration counts.
func (h *Handler) Stores(c tele.Context) error {
	stats, err := db.StoreStats(h.DB)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return c.Send("Поки що немає ні магазинів, ні заявок.")
	}

	var b strings.Builder
	b.WriteString("🏪 Заявки по магазинах:\n")
	for _, s := range stats {
		name := s.Name
		if name == "" {
			name = "(без назви)"
		}
		fmt.Fprintf(&b, "№%d %s — %s\n", s.StoreNo, escapeHTML(name), humanize.Comma(int64(s.Count)))
	}
	return c.Send(b.String())
}

// StoreAdd adds or renames a store directory entry.
// Usage: /store_add 8 Центральний.
func (h *Handler) StoreAdd(c tele.Context) error {
	parts := strings.SplitN(strings.TrimSpace(c.Message().Payload), " ", 2)
	if len(parts) < 2 || parts[0] == "" {
		return c.Send("Використання: /store_add <номер> <назва>")
	}
	storeNo, err := strconv.Atoi(parts[0])
	if err != nil || storeNo <= 0 {
		return c.Send("Номер магазину має бути додатним числом.")
	}
	name := strings.TrimSpace(parts[1])

	if err := db.UpsertStore(h.DB, storeNo, name); err != nil {
		return err
	}
	return c.Send(fmt.Sprintf("✅ Магазин №%d — «%s» збережено.", storeNo, escapeHTML(name)))
}

// Export sends the participant list as an Excel document.
func (h *Handler) Export(c tele.Context) error {
	participants, err := db.Participants(h.DB)
	if err != nil {
		return err
	}
	if len(participants) == 0 {
		return c.Send("Учасників поки немає, експортувати нічого.")
	}

	data, err := export.ParticipantsXLSX(participants)
	if err != nil {
		return err
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: fmt.Sprintf("participants-%s.xlsx", time.Now().Format("2006-01-02")),
	}
	return c.Send(doc)
}

// Backup ships the raw SQLite file.
func (h *Handler) Backup(c tele.Context) error {
	if _, err := os.Stat(h.DBPath); err != nil {
		return c.Send("⚠️ Файл бази даних не знайдено: " + escapeHTML(h.DBPath))
	}
	doc := &tele.Document{
		File:     tele.FromDisk(h.DBPath),
		FileName: fmt.Sprintf("backup-%s.db", time.Now().Format("2006-01-02")),
	}
	return c.Send(doc)
}

// Clear wipes participants, rules and winners. It demands an explicit "так"
// argument so a fat-fingered /clear does nothing.
func (h *Handler) Clear(c tele.Context) error {
	if strings.TrimSpace(c.Message().Payload) != "так" {
		return c.Send("⚠️ Це видалить усі заявки, правила та переможців.\nЩоб підтвердити, надішліть: /clear так")
	}

	stats, err := db.ClearAll(h.DB)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧹 Базу очищено.\nБуло: учасників %d, правил %d, переможців %d.\nВидалено: учасників %d, правил %d, переможців %d.\nПісля: учасників %d, правил %d, переможців %d.",
		stats.Before.Participants, stats.Before.Rules, stats.Before.Winners,
		stats.Deleted.Participants, stats.Deleted.Rules, stats.Deleted.Winners,
		stats.After.Participants, stats.After.Rules, stats.After.Winners,
	)

	// The sheet clear is a separate call and fails independently.
	if h.Sheet != nil {
		ctx, cancel := sheetContext()
		err := h.Sheet.ClearKeepHeader(ctx)
		cancel()
		if err != nil {
			fmt.Fprintf(&b, "\n⚠️ Google-таблицю очистити не вдалося: %s", escapeHTML(err.Error()))
		} else {
			b.WriteString("\nGoogle-таблицю також очищено.")
		}
	}
	return c.Send(b.String())
}

// SetRules replaces the published raffle rules.
func (h *Handler) SetRules(c tele.Context) error {
	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return c.Send("Використання: /set_rules <текст правил>")
	}
	if err := db.SetRules(h.DB, text); err != nil {
		return err
	}
	return c.Send("✅ Правила оновлено.")
}

// GetRules shows the rules as stored, admin view.
func (h *Handler) GetRules(c tele.Context) error {
	rules, err := db.GetRules(h.DB)
	if err != nil {
		return err
	}
	if rules == "" {
		return c.Send("Правила ще не встановлені.")
	}
	return c.Send("📋 Поточні правила:\n\n" + escapeHTML(rules))
}

// RandomWinner draws a winner among participants who have not won before
// and records the win.
func (h *Handler) RandomWinner(c tele.Context) error {
	candidate, err := db.PickRandomWinner(h.DB)
	if err != nil {
		return err
	}
	if candidate == nil {
		return c.Send("Немає кандидатів: або заявок ще немає, або всі вже вигравали.")
	}
	if err := db.SaveWinner(h.DB, candidate.ParticipantID); err != nil {
		return err
	}
	return c.Send(formatWinner(*candidate))
}

// Winners lists the twenty most recent winners, newest first.
func (h *Handler) Winners(c tele.Context) error {
	winners, err := db.RecentWinners(h.DB, 20)
	if err != nil {
		return err
	}
	if len(winners) == 0 {
		return c.Send("Переможців поки немає.")
	}

	var b strings.Builder
	b.WriteString("🏆 Останні переможці:\n")
	for _, w := range winners {
		fmt.Fprintf(&b, "№%d %s %s — %s\n",
			w.ParticipantID,
			escapeHTML(w.FullName),
			atUsername(w.Username),
			w.WonAt.Format("02.01.2006"),
		)
	}
	return c.Send(b.String())
}

// Broadcast sends the payload text to every participant that registered
// through the bot. Sends are throttled to stay under Telegram's rate limit.
func (h *Handler) Broadcast(c tele.Context) error {
	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return c.Send("Використання: /broadcast <текст повідомлення>")
	}

	targets, err := db.BroadcastTargets(h.DB)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return c.Send("Немає кому розсилати: жоден учасник не має Telegram id.")
	}

	sent, failed := 0, 0
	for _, t := range targets {
		if _, err := h.Bot.Send(tele.ChatID(t.TgUserID), text); err != nil {
			failed++
			slog.Warn("Broadcast send failed", "user_id", t.TgUserID, "error", err)
		} else {
			sent++
		}
		time.Sleep(50 * time.Millisecond)
	}
	return c.Send(fmt.Sprintf("📣 Розсилку завершено: доставлено %d, помилок %d.", sent, failed))
}

// GsDiag reports how far the Google Sheets mirror gets: credentials,
// spreadsheet access, worksheet, row count.
func (h *Handler) GsDiag(c tele.Context) error {
	if h.Sheet == nil {
		return c.Send("Дзеркало Google-таблиці вимкнено (GOOGLE_SHEET_ID не задано).")
	}

	ctx, cancel := sheetContext()
	defer cancel()
	return c.Send(formatDiagnostics(h.Sheet.Diagnostics(ctx)))
}

// GsClear wipes the mirror worksheet but keeps the header row.
func (h *Handler) GsClear(c tele.Context) error {
	if h.Sheet == nil {
		return c.Send("Дзеркало Google-таблиці вимкнено (GOOGLE_SHEET_ID не задано).")
	}

	ctx, cancel := sheetContext()
	defer cancel()

	before, err := h.Sheet.RowCount(ctx)
	if err != nil {
		return c.Send("❌ Не вдалося прочитати таблицю: " + escapeHTML(err.Error()))
	}
	if err := h.Sheet.ClearKeepHeader(ctx); err != nil {
		return c.Send("❌ Не вдалося очистити таблицю: " + escapeHTML(err.Error()))
	}
	after, err := h.Sheet.RowCount(ctx)
	if err != nil {
		return c.Send("❌ Таблицю очищено, але перевірити не вдалося: " + escapeHTML(err.Error()))
	}
	return c.Send(fmt.Sprintf("🧹 Google-таблицю очищено: було %d рядків, стало %d, заголовок збережено.", before, after))
}

func atUsername(username string) string {
	if username == "" {
		return "(без нікнейму)"
	}
	return "@" + escapeHTML(username)
}

// rawUsername is atUsername without escaping, for callers that escape later.
func rawUsername(username string) string {
	if username == "" {
		return "(без нікнейму)"
	}
	return "@" + username
}

func formatWinner(w models.WinnerCandidate) string {
	store := "—"
	if w.StoreNo != nil {
		store = fmt.Sprintf("№%d", *w.StoreNo)
	}
	// Handle and phone stay behind spoilers so a screenshot of the chat
	// does not leak the winner's contacts.
	return fmt.Sprintf(
		"🎉 Переможець: %s %s\nТелефон: %s\nМагазин: %s\nЗаявка №%d від %s",
		escapeHTML(w.FullName),
		spoiler(rawUsername(w.Username)),
		spoiler(w.Phone),
		store,
		w.ParticipantID,
		w.CreatedAt.Format("02.01.2006"),
	)
}

func formatDiagnostics(d models.SheetDiagnostics) string {
	check := func(ok bool) string {
		if ok {
			return "✅"
		}
		return "❌"
	}

	var b strings.Builder
	b.WriteString("🔍 Діагностика Google-таблиці:\n")
	fmt.Fprintf(&b, "%s Файл облікових даних\n", check(d.CredsFileExists))
	fmt.Fprintf(&b, "%s Доступ до таблиці (%s)\n", check(d.CanOpen), escapeHTML(d.SheetID))
	fmt.Fprintf(&b, "%s Аркуш «%s»\n", check(d.WorksheetOK), escapeHTML(d.WorksheetTitle))
	if d.Err != "" {
		fmt.Fprintf(&b, "\nПомилка: %s", escapeHTML(d.Err))
	} else {
		fmt.Fprintf(&b, "Рядків із заявками: %d", d.RowCount)
	}
	return b.String()
}
