// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the domain types shared across packages.

Optional columns (tg_user_id, photo_id, store_no) are pointer fields, never
sentinel values. A Participant without TgUserID cannot be targeted by
broadcast and is filtered out at query level (db.BroadcastTargets).
*/
package models
