package models

import "time"

// RefreshToken is a single-use token row. Consuming it deletes the row.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// ExpiredAt reports whether the token is no longer valid at now.
func (t *RefreshToken) ExpiredAt(now time.Time) bool {
	return !now.Before(t.Expires)
}
