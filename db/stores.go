// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"

	"github.com/danielhkuo/raffle-bot/models"
)

// UpsertStore creates or renames a store directory entry.
func UpsertStore(db *sql.DB, storeNo int, name string) error {
	_, err := db.Exec(`
		INSERT INTO stores (store_no, name)
		VALUES (?, ?)
		ON CONFLICT(store_no) DO UPDATE SET name=excluded.name
	`, storeNo, name)
	return err
}

// Stores returns the store directory ordered by store number.
func Stores(db *sql.DB) ([]models.StoreInfo, error) {
	rows, err := db.Query(`SELECT store_no, COALESCE(name,'') FROM stores ORDER BY store_no ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StoreInfo
	for rows.Next() {
		var s models.StoreInfo
		if err := rows.Scan(&s.StoreNo, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// StoreStats returns one row per store number that appears in the directory
// or in at least one registration: a directory entry with zero registrations
// still shows up, and a registration against an unlisted store shows up with
// a blank name.
func StoreStats(db *sql.DB) ([]models.StoreStat, error) {
	rows, err := db.Query(`
		WITH nums AS (
		  SELECT store_no FROM participants WHERE store_no IS NOT NULL
		  UNION
		  SELECT store_no FROM stores
		)
		SELECT
		  n.store_no,
		  COALESCE(s.name, '') AS name,
		  (SELECT COUNT(*) FROM participants p WHERE p.store_no = n.store_no) AS cnt
		FROM nums n
		LEFT JOIN stores s ON s.store_no = n.store_no
		WHERE n.store_no IS NOT NULL
		ORDER BY n.store_no ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StoreStat
	for rows.Next() {
		var s models.StoreStat
		if err := rows.Scan(&s.StoreNo, &s.Name, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
