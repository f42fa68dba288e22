// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type Participant struct {
	ID        int64
	TgUserID  *int64 // legacy rows may lack it; such rows are skipped by broadcast
	Username  string
	FullName  string
	Phone     string
	PhotoID   *string
	StoreNo   *int
	CreatedAt time.Time
}

// NewParticipant carries the fields of a registration about to be persisted.
type NewParticipant struct {
	TgUserID *int64
	Username string
	FullName string
	Phone    string
	PhotoID  *string
	StoreNo  *int
}

// BroadcastTarget is a participant row that can actually receive messages.
type BroadcastTarget struct {
	TgUserID      int64
	ParticipantID int64
}

type StoreInfo struct {
	StoreNo int
	Name    string
}

// StoreStat is one row of the store directory + registration count union.
type StoreStat struct {
	StoreNo int
	Name    string // blank when the store is not in the directory
	Count   int
}

// WinnerCandidate is a randomly drawn participant not yet present in winners.
type WinnerCandidate struct {
	ParticipantID int64
	Username      string
	FullName      string
	Phone         string
	StoreNo       *int
	CreatedAt     time.Time
}

type WinnerInfo struct {
	WonAt         time.Time
	ParticipantID int64
	Username      string
	FullName      string
	Phone         string
	StoreNo       *int
}

// Maintenance types

type TableCounts struct {
	Participants int
	Rules        int
	Winners      int
}

type ClearStats struct {
	Before  TableCounts
	Deleted TableCounts
	After   TableCounts
}

// SheetDiagnostics reports how far the mirror gets before failing.
type SheetDiagnostics struct {
	CredsFileExists bool
	SheetID         string
	WorksheetTitle  string
	CanOpen         bool
	WorksheetOK     bool
	RowCount        int // data rows, header excluded; valid only when WorksheetOK
	Err             string
}
