// Package conversations stores 1:1 threads and each participant's read
// position.
package conversations

import (
	"context"

	"github.com/dmitrijs2005/tenantline/internal/server/models"
)

type Repository interface {
	// FindOrCreate returns the id of the single conversation between the
	// two users, creating it and both memberships when absent.
	FindOrCreate(ctx context.Context, userID, otherID string) (string, error)
	// ListForUser returns userID's conversations, most recent activity first.
	ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error)
	// GetForUser returns one conversation as seen by userID, or
	// common.ErrorNotFound when userID is not a participant.
	GetForUser(ctx context.Context, conversationID, userID string) (*models.Conversation, error)
	IsMember(ctx context.Context, conversationID, userID string) (bool, error)
	// MarkRead advances userID's read position to now. It never moves back.
	MarkRead(ctx context.Context, conversationID, userID string) error
}
