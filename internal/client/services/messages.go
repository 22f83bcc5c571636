package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/envelope"
	"github.com/dmitrijs2005/tenantline/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	tempIDPrefix         = "tmp-"
	defaultDecodeWorkers = 4
)

var (
	ErrNoConversation     = errors.New("no conversation selected")
	ErrConversationClosed = errors.New("conversation closed")
	ErrEmptyMessage       = errors.New("empty message")
)

// PassphraseSource supplies the current passphrase. *Session implements it.
type PassphraseSource interface {
	Passphrase() string
}

// outgoing is a send between its optimistic entry and the server reply.
type outgoing struct {
	sel     *selection
	pending models.Message
	// passphrase at the time the send was started
	passphrase string
}

// SendResult is delivered by SendAsync once the send settles.
type SendResult struct {
	Message models.Message
	Err     error
}

// selection is the state bound to one opened conversation. Its context is
// cancelled when another conversation is selected or on Deselect, which
// abandons in-flight sends for it.
type selection struct {
	id       string
	ctx      context.Context
	cancel   context.CancelFunc
	messages []models.Message
}

// MessageController drives the lifecycle of messages in the selected
// conversation: history load with decoding, optimistic sends and their
// reconciliation.
//
// Visible order is send-initiation order. A confirmed send replaces its
// pending entry in place; a failed one is removed.
type MessageController struct {
	client  client.Client
	store   *ConversationStore
	codec   *envelope.Codec
	keys    PassphraseSource
	userID  string
	workers int
	log     logging.Logger

	newTempID func() string
	now       func() time.Time

	mu      sync.Mutex
	sel     *selection
	loadSeq uint64

	async sync.WaitGroup
}

func NewMessageController(
	c client.Client,
	store *ConversationStore,
	codec *envelope.Codec,
	keys PassphraseSource,
	userID string,
	workers int,
	log logging.Logger,
) *MessageController {
	if workers <= 0 {
		workers = defaultDecodeWorkers
	}
	return &MessageController{
		client:    c,
		store:     store,
		codec:     codec,
		keys:      keys,
		userID:    userID,
		workers:   workers,
		log:       log.With("module", "messages"),
		newTempID: func() string { return tempIDPrefix + uuid.NewString() },
		now:       time.Now,
	}
}

// Select opens a conversation: it loads and decodes the history, replaces
// the visible list and marks the conversation read. Sends still in flight
// for the previously selected conversation are abandoned. Selecting the
// open conversation again reloads its history and keeps its in-flight
// sends, still pending, after it.
//
// If loading fails the previous selection and its list stay as they were.
func (c *MessageController) Select(ctx context.Context, conversationID string) ([]models.Message, error) {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	wire, err := c.client.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	messages, err := c.decodeAll(ctx, wire, c.keys.Passphrase())
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	c.mu.Lock()
	if seq != c.loadSeq {
		// a newer Select or Deselect won
		c.mu.Unlock()
		return nil, ErrConversationClosed
	}
	if c.sel != nil && c.sel.id == conversationID {
		for _, m := range c.sel.messages {
			if m.IsPending() {
				messages = append(messages, m)
			}
		}
		c.sel.messages = messages
	} else {
		c.closeLocked()
		selCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		c.sel = &selection{id: conversationID, ctx: selCtx, cancel: cancel, messages: messages}
	}
	visible := append([]models.Message(nil), messages...)
	c.mu.Unlock()

	c.store.MarkRead(ctx, conversationID)

	c.log.Debug(ctx, "conversation opened", "conversation_id", conversationID, "messages", len(visible))
	return visible, nil
}

// decodeAll decodes wire bodies with a bounded number of workers; order is
// preserved. Incoming messages are marked read since the user is now
// looking at them.
func (c *MessageController) decodeAll(ctx context.Context, wire []models.WireMessage, passphrase string) ([]models.Message, error) {
	out := make([]models.Message, len(wire))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range wire {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := c.fromWire(wire[i], passphrase)
			if !m.IsOwn {
				m.Status = models.StatusRead
			}
			out[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MessageController) fromWire(w models.WireMessage, passphrase string) models.Message {
	return models.Message{
		Ref:            models.Confirmed{ServerID: w.ID},
		ConversationID: w.ConversationID,
		SenderID:       w.SenderID,
		SenderName:     w.SenderName,
		Body:           c.codec.Decode(w.Payload, passphrase),
		Status:         models.ParseStatus(w.Status),
		Timestamp:      w.Timestamp,
		IsOwn:          w.SenderID == c.userID,
	}
}

// Deselect closes the current conversation and abandons its in-flight sends.
func (c *MessageController) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadSeq++
	c.closeLocked()
}

func (c *MessageController) closeLocked() {
	if c.sel == nil {
		return
	}
	c.sel.cancel()
	c.sel = nil
}

// Current returns the id of the selected conversation or "".
func (c *MessageController) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel == nil {
		return ""
	}
	return c.sel.id
}

// Messages returns a snapshot of the visible list.
func (c *MessageController) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel == nil {
		return nil
	}
	return append([]models.Message(nil), c.sel.messages...)
}

// Send sends body to the selected conversation. The message is shown
// immediately as pending and reconciled once the server answers.
//
// On failure the pending entry is removed and the error returned. If the
// conversation is closed before the server answers, the send is abandoned
// and ErrConversationClosed is returned.
func (c *MessageController) Send(ctx context.Context, body string) (models.Message, error) {
	out, err := c.beginSend(body)
	if err != nil {
		return models.Message{}, err
	}
	return c.finishSend(ctx, out)
}

// SendAsync starts a send and returns the temporary id right away. The
// result channel receives exactly one value.
func (c *MessageController) SendAsync(ctx context.Context, body string) (string, <-chan SendResult) {
	out := make(chan SendResult, 1)

	o, err := c.beginSend(body)
	if err != nil {
		out <- SendResult{Err: err}
		close(out)
		return "", out
	}

	c.async.Add(1)
	go func() {
		defer c.async.Done()
		defer close(out)
		msg, err := c.finishSend(ctx, o)
		out <- SendResult{Message: msg, Err: err}
	}()

	return o.pending.ID(), out
}

// Wait blocks until all sends started with SendAsync have settled.
func (c *MessageController) Wait() {
	c.async.Wait()
}

// beginSend appends the optimistic entry and fixes the passphrase the
// message will be encoded with.
func (c *MessageController) beginSend(body string) (outgoing, error) {
	if strings.TrimSpace(body) == "" {
		return outgoing{}, ErrEmptyMessage
	}

	passphrase := c.keys.Passphrase()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sel == nil {
		return outgoing{}, ErrNoConversation
	}

	pending := models.Message{
		Ref:            models.Pending{TempID: c.newTempID()},
		ConversationID: c.sel.id,
		SenderID:       c.userID,
		Body:           body,
		Status:         models.StatusSending,
		Timestamp:      c.now(),
		IsOwn:          true,
	}
	c.sel.messages = append(c.sel.messages, pending)

	return outgoing{sel: c.sel, pending: pending, passphrase: passphrase}, nil
}

func (c *MessageController) finishSend(ctx context.Context, o outgoing) (models.Message, error) {
	sel, pending := o.sel, o.pending

	payload := pending.Body
	if o.passphrase != "" {
		var err error
		payload, err = c.codec.Encode(pending.Body, o.passphrase)
		if err != nil {
			c.remove(sel, pending.Ref)
			return failed(pending), fmt.Errorf("encode message: %w", err)
		}
	}

	sendCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sel.ctx, cancel)
	defer stop()

	w, err := c.client.SendMessage(sendCtx, sel.id, payload)

	if sel.ctx.Err() != nil {
		// the list this send belonged to is gone; a reply that still
		// arrived shows up on the next history load
		c.remove(sel, pending.Ref)
		c.log.Debug(ctx, "send abandoned", "conversation_id", sel.id, "temp_id", pending.ID(), "error", err)
		return failed(pending), ErrConversationClosed
	}
	if err != nil {
		c.remove(sel, pending.Ref)
		c.log.Warn(ctx, "send failed", "conversation_id", sel.id, "temp_id", pending.ID(), "error", err)
		return failed(pending), fmt.Errorf("send message: %w", err)
	}

	confirmed := c.confirm(pending, *w, o.passphrase)
	c.reconcile(sel, pending.Ref, confirmed)
	c.store.Touch(sel.id, confirmed.Body, confirmed.Timestamp)

	return confirmed, nil
}

// confirm builds the authoritative message from the server reply.
func (c *MessageController) confirm(pending models.Message, w models.WireMessage, passphrase string) models.Message {
	m := pending
	m.Ref = models.Confirmed{ServerID: w.ID}

	if w.Payload != "" {
		m.Body = c.codec.Decode(w.Payload, passphrase)
	}
	if w.SenderName != "" {
		m.SenderName = w.SenderName
	}
	if !w.Timestamp.IsZero() {
		m.Timestamp = w.Timestamp
	}

	m.Status = models.ParseStatus(w.Status)
	if m.Status == models.StatusSending || m.Status == models.StatusFailed {
		m.Status = models.StatusDelivered
	}
	return m
}

// reconcile swaps the pending entry for its confirmed form in place. A
// closed selection is left alone. If a history reload already brought the
// confirmed message, the pending entry is dropped instead.
func (c *MessageController) reconcile(sel *selection, ref models.Ref, confirmed models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := indexOf(sel.messages, ref)
	if i < 0 {
		return
	}
	if indexOf(sel.messages, confirmed.Ref) >= 0 {
		sel.messages = append(sel.messages[:i], sel.messages[i+1:]...)
		return
	}
	sel.messages[i] = confirmed
}

func (c *MessageController) remove(sel *selection, ref models.Ref) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := indexOf(sel.messages, ref); i >= 0 {
		sel.messages = append(sel.messages[:i], sel.messages[i+1:]...)
	}
}

func indexOf(messages []models.Message, ref models.Ref) int {
	for i, m := range messages {
		if sameRef(m.Ref, ref) {
			return i
		}
	}
	return -1
}

func sameRef(a, b models.Ref) bool {
	switch a := a.(type) {
	case models.Pending:
		b, ok := b.(models.Pending)
		return ok && a.TempID == b.TempID
	case models.Confirmed:
		b, ok := b.(models.Confirmed)
		return ok && a.ServerID == b.ServerID
	default:
		return false
	}
}

func failed(m models.Message) models.Message {
	m.Status = models.StatusFailed
	return m
}
