// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"

	"github.com/danielhkuo/raffle-bot/models"
)

func TestClearAll(t *testing.T) {
	db := newTestDB(t)

	var ids []int64
	for i := int64(0); i < 5; i++ {
		ids = append(ids, addTestParticipant(t, db, 100+i, 1))
	}
	if err := SetRules(db, "Правила"); err != nil {
		t.Fatal(err)
	}
	if err := SaveWinner(db, ids[0]); err != nil {
		t.Fatal(err)
	}
	if err := SaveWinner(db, ids[1]); err != nil {
		t.Fatal(err)
	}
	if err := UpsertStore(db, 1, "Перший"); err != nil {
		t.Fatal(err)
	}

	stats, err := ClearAll(db)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Before.Participants != 5 || stats.Before.Rules != 1 || stats.Before.Winners != 2 {
		t.Errorf("unexpected before counts: %+v", stats.Before)
	}
	if stats.Deleted != stats.Before {
		t.Errorf("deleted counts %+v do not match before counts %+v", stats.Deleted, stats.Before)
	}
	if stats.After != (models.TableCounts{}) {
		t.Errorf("expected zero after counts on the returned stats, got %+v", stats.After)
	}

	// The store directory survives a clear.
	stores, err := Stores(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 1 {
		t.Errorf("expected store directory intact, got %d rows", len(stores))
	}

	// Sequence reset: the next registration starts over at id 1.
	if id := addTestParticipant(t, db, 999, 1); id != 1 {
		t.Errorf("expected id sequence reset to 1, got %d", id)
	}
}
