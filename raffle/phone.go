// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"regexp"
	"strings"
)

// Accepts an optional leading +, then a digit, then at least six more
// characters drawn from digits, spaces, dashes and parentheses.
var phoneRe = regexp.MustCompile(`^\+?\d[\d\s\-\(\)]{6,}$`)

// ValidPhone reports whether s looks like a phone number a human would type.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// CleanPhone normalizes a phone number for storage: formatting characters
// are dropped, a leading + is kept, and leading zeros of the digit part are
// stripped ("+380 (50) 123-45-67" becomes "+380501234567").
func CleanPhone(s string) string {
	s = strings.TrimSpace(s)
	plus := strings.HasPrefix(s, "+")

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")

	if plus {
		return "+" + digits
	}
	return digits
}
