// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/raffle-bot/models"
)

// AddParticipant inserts a completed registration and returns its id.
// This is the main registration path: it records tg_user_id so the
// participant can later be reached by broadcast.
func AddParticipant(db *sql.DB, p models.NewParticipant) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO participants (tg_user_id, username, full_name, phone, photo_id, store_no, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.TgUserID, p.Username, p.FullName, p.Phone, p.PhotoID, p.StoreNo, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SaveParticipant is the legacy insert path that predates tg_user_id.
// Rows created through it cannot be targeted by broadcast.
func SaveParticipant(db *sql.DB, username, fullName, phone string, photoID *string, storeNo *int) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO participants (username, full_name, phone, photo_id, store_no, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, username, fullName, phone, photoID, storeNo, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Participants returns every registration, oldest first.
func Participants(db *sql.DB) ([]models.Participant, error) {
	rows, err := db.Query(`
		SELECT id, tg_user_id, username, full_name, phone, photo_id, store_no, created_at
		FROM participants
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanParticipant(rows *sql.Rows) (models.Participant, error) {
	var (
		p       models.Participant
		tgID    sql.NullInt64
		photoID sql.NullString
		storeNo sql.NullInt64
	)
	err := rows.Scan(&p.ID, &tgID, &p.Username, &p.FullName, &p.Phone, &photoID, &storeNo, &p.CreatedAt)
	if err != nil {
		return models.Participant{}, err
	}
	if tgID.Valid {
		p.TgUserID = &tgID.Int64
	}
	if photoID.Valid {
		p.PhotoID = &photoID.String
	}
	if storeNo.Valid {
		n := int(storeNo.Int64)
		p.StoreNo = &n
	}
	return p, nil
}

// CountParticipants returns the total number of registrations.
func CountParticipants(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&n)
	return n, err
}

// CountParticipantsSince counts registrations created at or after t.
func CountParticipantsSince(db *sql.DB, t time.Time) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM participants WHERE created_at >= ?`, t).Scan(&n)
	return n, err
}

// BroadcastTargets returns the participants that carry a tg_user_id.
// Legacy rows without one are excluded here rather than at the call site.
func BroadcastTargets(db *sql.DB) ([]models.BroadcastTarget, error) {
	rows, err := db.Query(`
		SELECT tg_user_id, id FROM participants WHERE tg_user_id IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BroadcastTarget
	for rows.Next() {
		var t models.BroadcastTarget
		if err := rows.Scan(&t.TgUserID, &t.ParticipantID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
