package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/envelope"
	"github.com/dmitrijs2005/tenantline/internal/logging"
)

// ConversationStore keeps the user's conversation summaries in memory.
// The list is replaced wholesale on every Load. Last-message previews are
// held decoded.
type ConversationStore struct {
	client client.Client
	codec  *envelope.Codec
	keys   PassphraseSource
	log    logging.Logger

	mu    sync.RWMutex
	items []models.Conversation

	// outstanding mark-read calls
	pending sync.WaitGroup
}

func NewConversationStore(c client.Client, codec *envelope.Codec, keys PassphraseSource, log logging.Logger) *ConversationStore {
	return &ConversationStore{client: c, codec: codec, keys: keys, log: log.With("module", "conversations")}
}

// Load fetches the full conversation set. On error the previous list is kept.
func (s *ConversationStore) Load(ctx context.Context) ([]models.Conversation, error) {
	items, err := s.client.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}

	passphrase := s.keys.Passphrase()
	for i := range items {
		items[i] = s.decode(items[i], passphrase)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return s.List(), nil
}

// List returns a copy of the loaded conversations.
func (s *ConversationStore) List() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Conversation(nil), s.items...)
}

// Search filters the loaded list by case-insensitive substring match on the
// participant name. An empty query returns everything.
func (s *ConversationStore) Search(query string) []models.Conversation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Conversation
	for _, c := range s.items {
		if strings.Contains(strings.ToLower(c.ParticipantName), q) {
			result = append(result, c)
		}
	}
	return result
}

func (s *ConversationStore) Get(id string) (models.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return models.Conversation{}, false
}

// MarkRead zeroes the unread counter locally and tells the server in the
// background. A failed server call is logged and the local counter stays
// at zero.
func (s *ConversationStore) MarkRead(ctx context.Context, id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].UnreadCount = 0
		}
	}
	s.mu.Unlock()

	// the caller's cancellation must not abort the receipt
	ctx = context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.client.MarkConversationRead(ctx, id); err != nil {
			s.log.Warn(ctx, "mark read failed", "conversation_id", id, "error", err)
		}
	}()
}

// Wait blocks until all background mark-read calls have finished.
func (s *ConversationStore) Wait() {
	s.pending.Wait()
}

// Touch updates the last-message preview of a conversation.
func (s *ConversationStore) Touch(id, lastMessage string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].LastMessage = lastMessage
			s.items[i].LastMessageTime = at
			return
		}
	}
}

// Upsert replaces the conversation with the same id or puts c first.
func (s *ConversationStore) Upsert(c models.Conversation) {
	c = s.decode(c, s.keys.Passphrase())

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = c
			return
		}
	}
	s.items = append([]models.Conversation{c}, s.items...)
}

// decode turns the server's last-message payload into display text.
func (s *ConversationStore) decode(c models.Conversation, passphrase string) models.Conversation {
	if c.LastMessage != "" {
		c.LastMessage = s.codec.Decode(c.LastMessage, passphrase)
	}
	return c
}
