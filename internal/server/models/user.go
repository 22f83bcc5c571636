// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. Salt and Verifier come from the client's
// key derivation; the server never sees the password.
type User struct {
	ID        string
	UserName  string
	Role      string
	Plan      string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
