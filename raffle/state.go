// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import "sync"

// Step identifies where a user is in the registration conversation.
type Step int

const (
	// StepIdle means no registration is in progress.
	StepIdle Step = iota
	// StepName means a receipt photo arrived and the bot is waiting for a name.
	StepName
	// StepPhone means the bot is waiting for a phone number.
	StepPhone
	// StepStore means the bot is waiting for a store number.
	StepStore
)

// Scratch accumulates a registration in progress. It lives in memory only;
// a restart drops unfinished conversations.
type Scratch struct {
	Step     Step
	Username string
	PhotoID  string
	Caption  string
	FullName string
	Phone    string
}

// States maps Telegram user ids to their in-flight registration.
type States struct {
	mu sync.Mutex
	m  map[int64]Scratch
}

// NewStates returns an empty state store.
func NewStates() *States {
	return &States{m: make(map[int64]Scratch)}
}

// Get returns the scratch for a user. An untracked user gets a zero
// Scratch, whose Step is StepIdle.
func (s *States) Get(userID int64) Scratch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[userID]
}

// Set replaces the scratch for a user.
func (s *States) Set(userID int64, sc Scratch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = sc
}

// Clear forgets the user's conversation.
func (s *States) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
