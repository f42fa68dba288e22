// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db contains the SQLite schema and all queries for participants,
// rules, winners and the store directory. Functions take a *sql.DB directly;
// there is no repository layer.
package db
