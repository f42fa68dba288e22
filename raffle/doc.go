// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package raffle implements the registration conversation: photo, name,
// phone, store number, then persistence plus the best-effort sheet mirror.
// Conversation state is in-memory and per-user.
package raffle
