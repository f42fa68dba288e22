// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestGetRules_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	text, err := GetRules(db)
	if err != nil {
		t.Fatal(err)
	}
	if text != "" {
		t.Errorf("expected empty rules, got %q", text)
	}
}

func TestSetRules_LastWriteWins(t *testing.T) {
	db := newTestDB(t)

	if err := SetRules(db, "Старі правила"); err != nil {
		t.Fatal(err)
	}
	if err := SetRules(db, "Нові правила"); err != nil {
		t.Fatal(err)
	}

	text, err := GetRules(db)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Нові правила" {
		t.Errorf("expected latest rules, got %q", text)
	}

	// Replacement must not accumulate rows.
	counts, err := TableCounts(db)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Rules != 1 {
		t.Errorf("expected 1 rules row, got %d", counts.Rules)
	}
}
