package models

import "time"

// Message statuses reported to clients. The server never stores "sending"
// or "failed"; those exist only on the client.
const (
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

// Message is a stored message. Content is opaque to the server: it is
// either plaintext or an envelope produced by the client.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderName     string
	Content        string
	Status         string
	CreatedAt      time.Time
}
