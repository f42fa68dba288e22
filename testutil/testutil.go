// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/raffle-bot/db"
	"github.com/danielhkuo/raffle-bot/models"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// The connection pool is pinned to one connection so every query sees the
// same :memory: database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	if err := db.CreateSchema(database); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { database.Close() })
	return database
}

// SeedParticipant inserts a registration with sensible defaults and
// returns its id.
func SeedParticipant(t *testing.T, database *sql.DB, tgUserID int64, storeNo int) int64 {
	t.Helper()

	id, err := db.AddParticipant(database, models.NewParticipant{
		TgUserID: &tgUserID,
		Username: "tester",
		FullName: "Test User",
		Phone:    "380501112233",
		StoreNo:  &storeNo,
	})
	if err != nil {
		t.Fatalf("Failed to seed participant: %v", err)
	}
	return id
}
