// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export renders the participant list as an Excel workbook for the
// /export admin command.
package export
