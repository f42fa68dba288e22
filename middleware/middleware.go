// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v3"
)

// Logger logs every processed update with who sent it and how long the
// handler took.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				"update_id", c.Update().ID,
				"duration", time.Since(start),
			}
			if s := c.Sender(); s != nil {
				attrs = append(attrs, "user_id", s.ID, "username", s.Username)
			}
			if m := c.Message(); m != nil && m.Text != "" {
				attrs = append(attrs, "text", m.Text)
			}
			if err != nil {
				attrs = append(attrs, "error", err)
				slog.Error("Update failed", attrs...)
				return err
			}
			slog.Info("Update handled", attrs...)
			return nil
		}
	}
}

// Recover converts a handler panic into an error so one bad update cannot
// take the long-poll loop down.
func Recover() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic: %v", r)
					slog.Error("Recovered from handler panic", "panic", r, "update_id", c.Update().ID)
				}
			}()
			return next(c)
		}
	}
}
