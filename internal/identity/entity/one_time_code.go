package entity

import "time"

// OneTimeCode is an email-delivered login code.
//
// A user has at most one outstanding code; issuing a new one replaces any
// previous code.
type OneTimeCode struct {
	ID        int64
	UserID    int64
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}
