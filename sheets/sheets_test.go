// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"testing"
	"time"

	"github.com/danielhkuo/raffle-bot/models"
)

func TestNextSeq(t *testing.T) {
	tests := []struct {
		name string
		colA [][]interface{}
		want int
	}{
		{
			name: "empty sheet",
			colA: nil,
			want: 1,
		},
		{
			name: "header only",
			colA: [][]interface{}{{"№"}},
			want: 1,
		},
		{
			name: "sequential rows",
			colA: [][]interface{}{{"№"}, {"1"}, {"2"}, {"3"}},
			want: 4,
		},
		{
			name: "gap after manual deletion",
			colA: [][]interface{}{{"№"}, {"1"}, {"7"}},
			want: 8,
		},
		{
			name: "stray non-numeric cell",
			colA: [][]interface{}{{"№"}, {"1"}, {"оновлено"}, {"2"}},
			want: 3,
		},
		{
			name: "empty cells",
			colA: [][]interface{}{{"№"}, {}, {"5"}},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSeq(tt.colA); got != tt.want {
				t.Errorf("nextSeq() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParticipantRow(t *testing.T) {
	store := 8
	p := models.Participant{
		Username:  "olena",
		FullName:  "Olena",
		Phone:     "+380501234567",
		StoreNo:   &store,
		CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	row := participantRow(3, p)
	want := []interface{}{"3", "@olena", "Olena", "+380501234567", "8", "2025-06-01 12:30:00"}
	if len(row) != len(want) {
		t.Fatalf("row has %d cells, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestHeaderStale(t *testing.T) {
	tests := []struct {
		name string
		row  []interface{}
		want bool
	}{
		{
			name: "current header",
			row:  []interface{}{"№", "Telegram user", "Ім'я", "Номер телефону", "Магазин №", "Дата"},
			want: false,
		},
		{
			name: "old five-column header",
			row:  []interface{}{"№", "Telegram user", "Ім'я", "Номер телефону", "Дата"},
			want: true,
		},
		{
			name: "renamed column",
			row:  []interface{}{"№", "Telegram user", "Имя", "Номер телефону", "Магазин №", "Дата"},
			want: true,
		},
		{
			name: "empty row",
			row:  nil,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerStale(tt.row); got != tt.want {
				t.Errorf("headerStale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParticipantRow_MissingOptionals(t *testing.T) {
	p := models.Participant{
		FullName:  "Без Нікнейму",
		Phone:     "501234567",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	row := participantRow(1, p)
	if row[1] != "" {
		t.Errorf("expected empty username cell, got %v", row[1])
	}
	if row[4] != "" {
		t.Errorf("expected empty store cell, got %v", row[4])
	}
}
