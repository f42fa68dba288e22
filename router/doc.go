// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router maps Telegram commands and message types to their
// handlers and applies bot-wide middleware.
package router
