// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/raffle-bot/models"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"a & b", "a &amp; b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.input); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSpoiler(t *testing.T) {
	got := spoiler("+380501234567")
	want := "<tg-spoiler>+380501234567</tg-spoiler>"
	if got != want {
		t.Errorf("spoiler() = %q, want %q", got, want)
	}

	// User-supplied content inside a spoiler must still be escaped.
	if got := spoiler("<x>"); got != "<tg-spoiler>&lt;x&gt;</tg-spoiler>" {
		t.Errorf("spoiler must escape its content, got %q", got)
	}
}

func TestAtUsername(t *testing.T) {
	if got := atUsername("olena"); got != "@olena" {
		t.Errorf("atUsername(olena) = %q", got)
	}
	if got := atUsername(""); got != "(без нікнейму)" {
		t.Errorf("atUsername(empty) = %q", got)
	}
}

func TestFormatWinner(t *testing.T) {
	store := 8
	w := models.WinnerCandidate{
		ParticipantID: 3,
		Username:      "olena",
		FullName:      "Olena",
		Phone:         "+380501234567",
		StoreNo:       &store,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	got := formatWinner(w)
	for _, frag := range []string{
		"Olena",
		"<tg-spoiler>@olena</tg-spoiler>",
		"<tg-spoiler>+380501234567</tg-spoiler>",
		"№8",
		"Заявка №3",
		"01.06.2025",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("formatWinner missing %q in %q", frag, got)
		}
	}

	// Without a store the placeholder is shown.
	w.StoreNo = nil
	if !strings.Contains(formatWinner(w), "Магазин: —") {
		t.Error("expected store placeholder for nil StoreNo")
	}
}

func TestFormatDiagnostics(t *testing.T) {
	ok := models.SheetDiagnostics{
		CredsFileExists: true,
		SheetID:         "sheet-id",
		WorksheetTitle:  "Лист1",
		CanOpen:         true,
		WorksheetOK:     true,
		RowCount:        12,
	}
	got := formatDiagnostics(ok)
	if strings.Contains(got, "❌") {
		t.Errorf("healthy report must not contain failures: %q", got)
	}
	if !strings.Contains(got, "12") {
		t.Errorf("expected row count in report: %q", got)
	}

	bad := models.SheetDiagnostics{
		CredsFileExists: true,
		SheetID:         "sheet-id",
		WorksheetTitle:  "Лист1",
		Err:             "open spreadsheet: 403",
	}
	got = formatDiagnostics(bad)
	if !strings.Contains(got, "❌") || !strings.Contains(got, "403") {
		t.Errorf("failing report must show the stage and error: %q", got)
	}
}
