// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"time"
)

// SetRules replaces the raffle rules text. Only the latest text is ever
// current, so prior rows are removed in the same transaction.
func SetRules(db *sql.DB, text string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM rules`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO rules (text, created_at) VALUES (?, ?)`, text, time.Now()); err != nil {
		return err
	}
	return tx.Commit()
}

// GetRules returns the current rules text, or "" when none is set.
func GetRules(db *sql.DB) (string, error) {
	var text string
	err := db.QueryRow(`SELECT text FROM rules ORDER BY id DESC LIMIT 1`).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}
