package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MessagingService serves conversations and messages for authenticated users.
// Message content is stored and returned as-is.
type MessagingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessagingService(db *sql.DB, m repomanager.RepositoryManager) *MessagingService {
	return &MessagingService{db: db, repomanager: m}
}

// ListConversations returns userID's conversation summaries.
func (s *MessagingService) ListConversations(ctx context.Context, userID string) ([]*models.Conversation, error) {
	list, err := s.repomanager.Conversations(s.db).ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	return list, nil
}

// StartConversation returns the conversation between userID and the user
// named participant, creating it on first contact.
func (s *MessagingService) StartConversation(ctx context.Context, userID, participant string) (*models.Conversation, error) {
	participant = strings.TrimSpace(participant)
	if participant == "" {
		return nil, fmt.Errorf("%w: participant is required", common.ErrorValidation)
	}

	other, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, participant)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error looking up participant: %w", err)
	}
	if other.ID == userID {
		return nil, fmt.Errorf("%w: cannot start a conversation with yourself", common.ErrorValidation)
	}

	var conv *models.Conversation
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Conversations(tx)
		id, err := repo.FindOrCreate(ctx, userID, other.ID)
		if err != nil {
			return err
		}
		conv, err = repo.GetForUser(ctx, id, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error starting conversation: %w", err)
	}
	return conv, nil
}

// ListMessages returns the history of conversationID. Non-participants get
// common.ErrorNotFound, the same as for a missing conversation.
func (s *MessagingService) ListMessages(ctx context.Context, userID, conversationID string) ([]*models.Message, error) {
	if err := s.requireMember(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	list, err := s.repomanager.Messages(s.db).ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return list, nil
}

// SendMessage stores content from userID in conversationID.
func (s *MessagingService) SendMessage(ctx context.Context, userID, conversationID, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorValidation)
	}
	if err := s.requireMember(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	m, err := s.repomanager.Messages(s.db).Create(ctx, conversationID, userID, content)
	if err != nil {
		return nil, fmt.Errorf("error storing message: %w", err)
	}
	return m, nil
}

// MarkRead moves userID's read position in conversationID to now.
func (s *MessagingService) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := uuid.Parse(conversationID); err != nil {
		return common.ErrorNotFound
	}
	err := s.repomanager.Conversations(s.db).MarkRead(ctx, conversationID, userID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error marking conversation read: %w", err)
	}
	return err
}

func (s *MessagingService) requireMember(ctx context.Context, conversationID, userID string) error {
	if _, err := uuid.Parse(conversationID); err != nil {
		return common.ErrorNotFound
	}
	ok, err := s.repomanager.Conversations(s.db).IsMember(ctx, conversationID, userID)
	if err != nil {
		return fmt.Errorf("error checking membership: %w", err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
