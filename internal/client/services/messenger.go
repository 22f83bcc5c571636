package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
	"github.com/dmitrijs2005/tenantline/internal/envelope"
	"github.com/dmitrijs2005/tenantline/internal/logging"
)

// ErrEntitlementDenied is returned by NewMessenger when the user's plan and
// role do not grant direct messaging.
var ErrEntitlementDenied = errors.New("direct messaging is not available for this account")

// MessengerOptions tunes the messaging core.
type MessengerOptions struct {
	// DecodeWorkers bounds parallel envelope decoding on history load.
	DecodeWorkers int
	// Codec overrides envelope.Default.
	Codec *envelope.Codec
}

// Messenger is the entry point of the messaging core. It exists only for
// users entitled to direct messaging.
type Messenger struct {
	profile       models.Profile
	client        client.Client
	session       *Session
	conversations *ConversationStore
	controller    *MessageController
	log           logging.Logger
}

// NewMessenger checks the direct messaging entitlement before anything else
// and returns ErrEntitlementDenied without touching the transport when it
// is not granted.
func NewMessenger(profile models.Profile, c client.Client, session *Session, opts MessengerOptions, log logging.Logger) (*Messenger, error) {
	if err := entitlements.Require(profile.Plan, profile.Role, entitlements.FeatureDirectMessaging); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntitlementDenied, err)
	}

	codec := opts.Codec
	if codec == nil {
		codec = envelope.Default
	}

	log = log.With("user_id", profile.UserID)
	store := NewConversationStore(c, codec, session, log)

	return &Messenger{
		profile:       profile,
		client:        c,
		session:       session,
		conversations: store,
		controller:    NewMessageController(c, store, codec, session, profile.UserID, opts.DecodeWorkers, log),
		log:           log,
	}, nil
}

func (m *Messenger) Profile() models.Profile { return m.profile }

func (m *Messenger) Conversations() *ConversationStore { return m.conversations }

func (m *Messenger) Controller() *MessageController { return m.controller }

func (m *Messenger) Session() *Session { return m.session }

// StartConversation opens (or finds) a 1:1 conversation with participant
// and adds it to the local list.
func (m *Messenger) StartConversation(ctx context.Context, participant string) (models.Conversation, error) {
	conv, err := m.client.StartConversation(ctx, participant)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("start conversation: %w", err)
	}
	m.conversations.Upsert(*conv)
	return *conv, nil
}

// Close abandons in-flight sends and waits for background work.
func (m *Messenger) Close() {
	m.controller.Deselect()
	m.controller.Wait()
	m.conversations.Wait()
}
