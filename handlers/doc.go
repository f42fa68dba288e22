// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers contains the Telegram-facing layer: public commands,
// the registration message handlers and the admin command surface.
// Everything domain-shaped lives below in raffle and db; handlers only
// translate between Telegram updates and those packages.
package handlers
