// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/raffle-bot/models"
)

func TestParticipantsXLSX(t *testing.T) {
	tgID := int64(42)
	store := 8
	participants := []models.Participant{
		{
			ID:        1,
			TgUserID:  &tgID,
			Username:  "olena",
			FullName:  "Olena",
			Phone:     "+380501234567",
			StoreNo:   &store,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			FullName:  "Legacy User",
			Phone:     "501234567",
			CreatedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := ParticipantsXLSX(participants)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "№" || rows[0][3] != "Ім'я" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "@olena" || rows[1][4] != "+380501234567" || rows[1][5] != "8" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	// Legacy row leaves optional columns blank. GetRows trims trailing
	// empty cells, so just check what must be present.
	if rows[2][3] != "Legacy User" {
		t.Errorf("unexpected second data row: %v", rows[2])
	}
}

func TestParticipantsXLSX_Empty(t *testing.T) {
	data, err := ParticipantsXLSX(nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
