package models

import "time"

// Conversation is the local summary of a 1:1 thread.
type Conversation struct {
	ID              string
	ParticipantID   string
	ParticipantName string
	LastMessage     string
	LastMessageTime time.Time
	// UnreadCount is never negative. It is zeroed locally as soon as the
	// thread is marked read, before the server confirms.
	UnreadCount int
}
