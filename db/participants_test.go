// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
	"time"

	"github.com/danielhkuo/raffle-bot/models"
)

func TestAddParticipant_SequentialIDs(t *testing.T) {
	db := newTestDB(t)

	first := addTestParticipant(t, db, 100, 8)
	second := addTestParticipant(t, db, 101, 8)

	if first != 1 || second != 2 {
		t.Errorf("expected sequential ids 1,2, got %d,%d", first, second)
	}
}

func TestParticipants_OptionalFields(t *testing.T) {
	db := newTestDB(t)

	photo := "AgACAgIAAxkBAAI"
	store := 8
	tgID := int64(42)
	_, err := AddParticipant(db, models.NewParticipant{
		TgUserID: &tgID,
		Username: "olena",
		FullName: "Olena",
		Phone:    "+380501234567",
		PhotoID:  &photo,
		StoreNo:  &store,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Legacy path: no tg_user_id, no photo, no store
	if _, err := SaveParticipant(db, "legacy", "Legacy User", "501234567", nil, nil); err != nil {
		t.Fatal(err)
	}

	rows, err := Participants(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(rows))
	}

	full := rows[0]
	if full.TgUserID == nil || *full.TgUserID != 42 {
		t.Error("expected tg_user_id 42 on main-path row")
	}
	if full.PhotoID == nil || *full.PhotoID != photo {
		t.Error("expected photo id round-trip")
	}
	if full.StoreNo == nil || *full.StoreNo != 8 {
		t.Error("expected store_no 8")
	}

	legacy := rows[1]
	if legacy.TgUserID != nil {
		t.Error("legacy row must have nil tg_user_id")
	}
	if legacy.PhotoID != nil || legacy.StoreNo != nil {
		t.Error("legacy row must have nil photo id and store_no")
	}
}

func TestBroadcastTargets_SkipsLegacyRows(t *testing.T) {
	db := newTestDB(t)

	addTestParticipant(t, db, 100, 1)
	addTestParticipant(t, db, 200, 2)
	if _, err := SaveParticipant(db, "legacy", "Legacy User", "", nil, nil); err != nil {
		t.Fatal(err)
	}

	targets, err := BroadcastTargets(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 2 {
		t.Fatalf("expected 2 broadcast targets, got %d", len(targets))
	}
	for _, tgt := range targets {
		if tgt.TgUserID != 100 && tgt.TgUserID != 200 {
			t.Errorf("unexpected target %d", tgt.TgUserID)
		}
	}
}

func TestCountParticipantsSince(t *testing.T) {
	db := newTestDB(t)

	addTestParticipant(t, db, 100, 1)
	addTestParticipant(t, db, 200, 2)

	total, err := CountParticipants(db)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("expected 2 participants, got %d", total)
	}

	today, err := CountParticipantsSince(db, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if today != 2 {
		t.Errorf("expected 2 recent participants, got %d", today)
	}

	future, err := CountParticipantsSince(db, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if future != 0 {
		t.Errorf("expected 0 future participants, got %d", future)
	}
}
