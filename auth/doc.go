// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth decides who may run admin commands. The admin list is
// static for the lifetime of the process, parsed once from configuration.
package auth
