package client

import (
	"context"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
)

// Client is the transport collaborator used by the messaging core.
type Client interface {
	Close() error
	Register(ctx context.Context, username string, role string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (*models.Profile, error)
	Ping(ctx context.Context) error

	ListConversations(ctx context.Context) ([]models.Conversation, error)
	StartConversation(ctx context.Context, participant string) (*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]models.WireMessage, error)
	SendMessage(ctx context.Context, conversationID string, payload string) (*models.WireMessage, error)
	MarkConversationRead(ctx context.Context, conversationID string) error
}
