package models

import "time"

// Conversation is a 1:1 thread as seen by one of its two participants.
// Participant fields describe the other side.
type Conversation struct {
	ID              string
	ParticipantID   string
	ParticipantName string
	LastMessage     string
	LastMessageTime time.Time
	UnreadCount     int
}
