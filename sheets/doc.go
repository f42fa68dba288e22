// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sheets mirrors registrations into a Google spreadsheet. The sheet
// is a convenience copy for the marketing team; SQLite stays the source of
// truth and sheet failures never fail a registration.
package sheets
