package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/client/services"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
	"github.com/dmitrijs2005/tenantline/internal/envelope"
)

var (
	ErrNotLoggedIn = errors.New("please log in first")
	ErrOffline     = errors.New("messaging needs a server connection")
	ErrUpgrade     = errors.New("direct messaging is a premium feature; upgrade your plan to chat with landlords, tenants and artisans")
)

const timeLayout = "2006-01-02 15:04"

// messaging returns the messenger, creating it on first use. The
// entitlement gate runs before any conversation is loaded.
func (a *App) messaging(ctx context.Context) (*services.Messenger, error) {
	if !a.isLoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if a.messenger != nil {
		return a.messenger, nil
	}
	if a.profile == nil || !entitlements.CanUse(a.profile.Plan, a.profile.Role, entitlements.FeatureDirectMessaging) {
		return nil, ErrUpgrade
	}
	if a.Mode() != ModeOnline {
		return nil, ErrOffline
	}

	workers := 0
	if a.config != nil {
		workers = a.config.DecodeWorkers
	}
	m, err := services.NewMessenger(*a.profile, a.client, a.session, services.MessengerOptions{DecodeWorkers: workers}, a.log)
	if err != nil {
		if errors.Is(err, services.ErrEntitlementDenied) {
			return nil, ErrUpgrade
		}
		return nil, err
	}

	if _, err := m.Conversations().Load(ctx); err != nil {
		return nil, err
	}

	a.messenger = m
	return m, nil
}

// Features lists the features available to the current plan and role.
func (a *App) Features(ctx context.Context) error {
	if !a.isLoggedIn() {
		return ErrNotLoggedIn
	}
	if a.profile == nil {
		a.printf("No profile cached; log in online once to see your features.\n")
		return nil
	}
	a.printf("Plan: %s, role: %s\n", a.profile.Plan, a.profile.Role)
	for _, f := range entitlements.ListFeatures(a.profile.Role, a.profile.Plan) {
		a.printf("  %s\n", f)
	}
	return nil
}

// Conversations reloads and prints the conversation list.
func (a *App) Conversations(ctx context.Context) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}
	convs, err := m.Conversations().Load(ctx)
	if err != nil {
		return err
	}
	a.printConversations(convs)
	return nil
}

// Search filters the loaded conversations by participant name.
func (a *App) Search(ctx context.Context, query string) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}
	a.printConversations(m.Conversations().Search(query))
	return nil
}

func (a *App) printConversations(convs []models.Conversation) {
	if len(convs) == 0 {
		a.printf("No conversations.\n")
		return
	}
	for _, c := range convs {
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf(" [%d unread]", c.UnreadCount)
		}
		a.printf("%s  %-20s%s  %s\n", c.ID, c.ParticipantName, unread, preview(c.LastMessage))
	}
}

// Start opens a conversation with username, creating it if needed.
func (a *App) Start(ctx context.Context, username string) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}
	conv, err := m.StartConversation(ctx, username)
	if err != nil {
		return err
	}
	return a.Open(ctx, conv.ID)
}

// Open selects a conversation and prints its history.
func (a *App) Open(ctx context.Context, conversationID string) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}
	if _, err := m.Controller().Select(ctx, conversationID); err != nil {
		return err
	}
	return a.History(ctx)
}

// History prints the visible messages of the open conversation.
func (a *App) History(ctx context.Context) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}
	if m.Controller().Current() == "" {
		return services.ErrNoConversation
	}
	msgs := m.Controller().Messages()
	if len(msgs) == 0 {
		a.printf("No messages yet.\n")
	}
	for _, msg := range msgs {
		a.printMessage(msg)
	}
	return nil
}

func (a *App) printMessage(msg models.Message) {
	sender := msg.SenderName
	if msg.IsOwn {
		sender = "me"
	} else if sender == "" {
		sender = msg.SenderID
	}
	a.printf("[%s] %s: %s (%s)\n", msg.Timestamp.Local().Format(timeLayout), sender, msg.Body, msg.Status)
}

// Send sends text to the open conversation without blocking the prompt.
// The outcome is printed when the server answers.
func (a *App) Send(ctx context.Context, text string) error {
	m, err := a.messaging(ctx)
	if err != nil {
		return err
	}

	tempID, results := m.Controller().SendAsync(ctx, text)
	if tempID == "" {
		return (<-results).Err
	}
	a.printf("sending %s...\n", tempID)

	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		res := <-results
		switch {
		case res.Err == nil:
			a.printf("delivered %s at %s\n", res.Message.ID(), res.Message.Timestamp.Local().Format(timeLayout))
		case errors.Is(res.Err, services.ErrConversationClosed):
			a.printf("send abandoned, conversation closed: %q\n", preview(text))
		default:
			a.printf("send failed, message removed: %v\n", res.Err)
		}
	}()
	return nil
}

// Compose reads a multi-line message and sends it.
func (a *App) Compose(ctx context.Context) error {
	if _, err := a.messaging(ctx); err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Type your message", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return services.ErrEmptyMessage
	}
	return a.Send(ctx, text)
}

// Passphrase manages the shared passphrase used to encrypt message bodies:
//
//	passphrase set      prompt for a new passphrase (no echo)
//	passphrase clear    send plaintext from now on
//	passphrase status   show whether encryption is on
func (a *App) Passphrase(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return ErrNotLoggedIn
	}

	sub := "status"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "set":
		p, err := getSecret(os.Stdout, "New passphrase: ")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(p)
		if len(p) == 0 {
			return errors.New("empty passphrase; use 'passphrase clear' to disable encryption")
		}
		if err := a.session.SavePassphrase(ctx, string(p)); err != nil {
			return err
		}
		a.printf("Passphrase saved. Share it with your contacts out of band.\n")
		a.printf("Warning: messages encrypted with it cannot be read if it is lost.\n")

	case "clear":
		if err := a.session.ClearPassphrase(ctx); err != nil {
			return err
		}
		a.printf("Encryption disabled. Previously encrypted history will show as %q.\n", envelope.Undecryptable)

	case "status":
		if a.session.Passphrase() == "" {
			a.printf("Encryption: off\n")
		} else {
			a.printf("Encryption: on\n")
		}

	default:
		return fmt.Errorf("unknown passphrase command %q (use set, clear or status)", sub)
	}
	return nil
}

// getSecret is a test seam for GetSecret.
var getSecret = GetSecret

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:40]) + "…"
	}
	return s
}
