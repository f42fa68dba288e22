// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AdminList holds the Telegram user ids allowed to run admin commands.
type AdminList struct {
	ids map[int64]struct{}
}

// ParseAdminIDs parses a comma-separated id list ("123,456"). Whitespace
// around entries is tolerated; empty entries are skipped. An empty input
// yields a list that admits nobody.
func ParseAdminIDs(s string) (*AdminList, error) {
	a := &AdminList{ids: make(map[int64]struct{})}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		a.ids[id] = struct{}{}
	}
	return a, nil
}

// IsAdmin reports whether the given Telegram user id is on the list.
func (a *AdminList) IsAdmin(userID int64) bool {
	_, ok := a.ids[userID]
	return ok
}

// IDs returns the admin ids in ascending order.
func (a *AdminList) IDs() []int64 {
	out := make([]int64, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of admins on the list.
func (a *AdminList) Len() int {
	return len(a.ids)
}
