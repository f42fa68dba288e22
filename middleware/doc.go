// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides bot-wide update middleware: request logging
// and panic recovery.
package middleware
