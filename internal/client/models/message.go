package models

import "time"

// Status is a message lifecycle state:
//
//	sending -> delivered -> read
//	sending -> failed
type Status string

const (
	StatusSending   Status = "sending"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusFailed    Status = "failed"
)

// ParseStatus maps a server status string to a Status. Anything unknown is
// treated as delivered, since the server only returns stored messages.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusSending, StatusDelivered, StatusRead, StatusFailed:
		return Status(s)
	default:
		return StatusDelivered
	}
}

// Ref identifies a message. It is either Pending (optimistic, local) or
// Confirmed (assigned by the server).
type Ref interface {
	ID() string
	isRef()
}

// Pending identifies an optimistic message by its client-generated id.
type Pending struct {
	TempID string
}

func (p Pending) ID() string { return p.TempID }
func (Pending) isRef()       {}

// Confirmed identifies a stored message by its server id.
type Confirmed struct {
	ServerID string
}

func (c Confirmed) ID() string { return c.ServerID }
func (Confirmed) isRef()       {}

// Message is a message as shown to the user. Body is always plaintext (or
// a legacy/undecryptable placeholder); only the wire form sent to the
// server is ever encrypted.
type Message struct {
	Ref            Ref
	ConversationID string
	SenderID       string
	SenderName     string
	Body           string
	Status         Status
	Timestamp      time.Time
	IsOwn          bool
}

// ID returns the current identifier, temporary or canonical.
func (m Message) ID() string {
	if m.Ref == nil {
		return ""
	}
	return m.Ref.ID()
}

// IsPending reports whether m still awaits server confirmation.
func (m Message) IsPending() bool {
	_, ok := m.Ref.(Pending)
	return ok
}

// WireMessage is a message as returned by the transport. Payload is the
// wire body: plaintext or an envelope string.
type WireMessage struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderName     string
	Payload        string
	Status         string
	Timestamp      time.Time
}
