// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the bot.
// Safe to call multiple times - uses IF NOT EXISTS plus soft migrations
// for columns added after the first release.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// store_no arrived after the first deployments; add it to old databases
	ok, err := columnExists(db, "participants", "store_no")
	if err != nil {
		return fmt.Errorf("failed to inspect participants table: %w", err)
	}
	if !ok {
		if _, err := db.Exec(`ALTER TABLE participants ADD COLUMN store_no INTEGER`); err != nil {
			return fmt.Errorf("failed to add store_no column: %w", err)
		}
	}

	return nil
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

const schema = `
-- Participants: one row per completed registration
CREATE TABLE IF NOT EXISTS participants (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tg_user_id INTEGER,
    username TEXT,
    full_name TEXT,
    phone TEXT,
    photo_id TEXT,
    store_no INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Rules: free-text raffle conditions; only the latest row is current
CREATE TABLE IF NOT EXISTS rules (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Winners: at most one row per participant
CREATE TABLE IF NOT EXISTS winners (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    participant_id INTEGER UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(participant_id) REFERENCES participants(id)
);

-- Store directory, keyed by store number; survives a full clear
CREATE TABLE IF NOT EXISTS stores (
    store_no INTEGER PRIMARY KEY,
    name TEXT
);
`
