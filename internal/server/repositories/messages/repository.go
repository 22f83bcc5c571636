// Package messages stores message payloads. Content is kept verbatim: the
// server neither inspects nor decrypts envelopes.
package messages

import (
	"context"

	"github.com/dmitrijs2005/tenantline/internal/server/models"
)

type Repository interface {
	// Create stores content and returns the message with its server id,
	// timestamp and sender name.
	Create(ctx context.Context, conversationID, senderID, content string) (*models.Message, error)
	// ListByConversation returns the thread oldest first. A message is
	// "read" once its recipient's read position has passed it.
	ListByConversation(ctx context.Context, conversationID string) ([]*models.Message, error)
}
