// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/raffle-bot/models"
)

// PickRandomWinner draws one participant uniformly at random among those
// without a winners row. Returns (nil, nil) when everyone has already won.
// Drawing does not persist anything; the caller decides whether to
// SaveWinner the candidate.
func PickRandomWinner(db *sql.DB) (*models.WinnerCandidate, error) {
	var (
		c       models.WinnerCandidate
		storeNo sql.NullInt64
	)
	err := db.QueryRow(`
		SELECT p.id, p.username, p.full_name, p.phone, p.created_at, p.store_no
		FROM participants p
		LEFT JOIN winners w ON w.participant_id = p.id
		WHERE w.participant_id IS NULL
		ORDER BY RANDOM()
		LIMIT 1
	`).Scan(&c.ParticipantID, &c.Username, &c.FullName, &c.Phone, &c.CreatedAt, &storeNo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if storeNo.Valid {
		n := int(storeNo.Int64)
		c.StoreNo = &n
	}
	return &c, nil
}

// SaveWinner marks a participant as having won. Repeating the call for the
// same participant is a no-op, not an error.
func SaveWinner(db *sql.DB, participantID int64) error {
	_, err := db.Exec(`
		INSERT OR IGNORE INTO winners (participant_id, created_at) VALUES (?, ?)
	`, participantID, time.Now())
	return err
}

// RecentWinners returns the latest winners, newest first.
func RecentWinners(db *sql.DB, limit int) ([]models.WinnerInfo, error) {
	rows, err := db.Query(`
		SELECT w.created_at, p.id, p.username, p.full_name, p.phone, p.store_no
		FROM winners w
		JOIN participants p ON p.id = w.participant_id
		ORDER BY w.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WinnerInfo
	for rows.Next() {
		var (
			w       models.WinnerInfo
			storeNo sql.NullInt64
		)
		if err := rows.Scan(&w.WonAt, &w.ParticipantID, &w.Username, &w.FullName, &w.Phone, &storeNo); err != nil {
			return nil, err
		}
		if storeNo.Valid {
			n := int(storeNo.Int64)
			w.StoreNo = &n
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
