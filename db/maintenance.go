// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"

	"github.com/danielhkuo/raffle-bot/models"
)

// TableCounts returns row counts for participants, rules and winners.
func TableCounts(db *sql.DB) (models.TableCounts, error) {
	var c models.TableCounts
	if err := db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&c.Participants); err != nil {
		return c, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM rules`).Scan(&c.Rules); err != nil {
		return c, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM winners`).Scan(&c.Winners); err != nil {
		return c, err
	}
	return c, nil
}

// ClearAll wipes participants, rules and winners and reports before, deleted
// and after counts per table. The store directory is deliberately left
// intact. Auto-increment counters are reset best-effort; a storage engine
// without sqlite_sequence does not fail the clear.
func ClearAll(db *sql.DB) (models.ClearStats, error) {
	var stats models.ClearStats

	before, err := TableCounts(db)
	if err != nil {
		return stats, err
	}
	stats.Before = before

	tx, err := db.Begin()
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	for _, d := range []struct {
		query string
		count *int
	}{
		{`DELETE FROM participants`, &stats.Deleted.Participants},
		{`DELETE FROM rules`, &stats.Deleted.Rules},
		{`DELETE FROM winners`, &stats.Deleted.Winners},
	} {
		res, err := tx.Exec(d.query)
		if err != nil {
			return stats, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return stats, err
		}
		*d.count = int(n)
	}

	// Best-effort sequence reset; sqlite_sequence only exists once an
	// AUTOINCREMENT insert has happened.
	_, _ = tx.Exec(`DELETE FROM sqlite_sequence WHERE name IN ('participants','rules','winners')`)

	if err := tx.Commit(); err != nil {
		return stats, err
	}

	after, err := TableCounts(db)
	if err != nil {
		return stats, err
	}
	stats.After = after

	// Reclaim the freed pages; failure here does not undo the clear.
	_, _ = db.Exec(`VACUUM`)

	return stats, nil
}
