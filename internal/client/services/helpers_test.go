package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	require.NoError(t, err)
	return v
}

func countMeta(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	return n
}

// ---- fake client ----

// fakeClient implements client.Client for unit tests. Fields ending in Func
// override the canned results when set.
type fakeClient struct {
	mu sync.Mutex

	CloseErr    error
	RegisterErr error

	GetSaltRet []byte
	GetSaltErr error

	LoginRet *models.Profile
	LoginErr error

	PingErr error

	Conversations    []models.Conversation
	ListConvErr      error
	ListConvCalls    int
	StartConvRet     *models.Conversation
	StartConvErr     error
	LastParticipant  string
	History          map[string][]models.WireMessage
	ListMessagesErr  error
	ListMessagesFunc func(ctx context.Context, conversationID string) ([]models.WireMessage, error)

	SendFunc     func(ctx context.Context, conversationID, payload string) (*models.WireMessage, error)
	SentPayloads []string
	sendSeq      int

	MarkReadErr   error
	MarkReadCalls []string
	markReadDone  chan string

	LastRegisterUser string
	LastRegisterRole string
	LastRegisterSalt []byte
	LastRegisterKey  []byte

	LastGetSaltUser string

	LastLoginUser string
	LastLoginKey  []byte
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, role string, salt []byte, key []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterRole = role
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterKey = append([]byte(nil), key...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.LastGetSaltUser = username
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) (*models.Profile, error) {
	f.LastLoginUser = username
	f.LastLoginKey = append([]byte(nil), key...)
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	if f.LoginRet != nil {
		return f.LoginRet, nil
	}
	return &models.Profile{UserID: "u-1", UserName: username, Plan: "premium", Role: "tenant"}, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListConvCalls++
	if f.ListConvErr != nil {
		return nil, f.ListConvErr
	}
	return append([]models.Conversation(nil), f.Conversations...), nil
}

func (f *fakeClient) StartConversation(ctx context.Context, participant string) (*models.Conversation, error) {
	f.LastParticipant = participant
	return f.StartConvRet, f.StartConvErr
}

func (f *fakeClient) ListMessages(ctx context.Context, conversationID string) ([]models.WireMessage, error) {
	if f.ListMessagesFunc != nil {
		return f.ListMessagesFunc(ctx, conversationID)
	}
	if f.ListMessagesErr != nil {
		return nil, f.ListMessagesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.WireMessage(nil), f.History[conversationID]...), nil
}

func (f *fakeClient) SendMessage(ctx context.Context, conversationID string, payload string) (*models.WireMessage, error) {
	f.mu.Lock()
	f.SentPayloads = append(f.SentPayloads, payload)
	f.sendSeq++
	seq := f.sendSeq
	fn := f.SendFunc
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, conversationID, payload)
	}
	return &models.WireMessage{
		ID:             fmt.Sprintf("srv-%d", seq),
		ConversationID: conversationID,
		SenderID:       "u-1",
		Payload:        payload,
		Status:         "delivered",
		Timestamp:      time.Date(2025, 1, 1, 0, 0, seq, 0, time.UTC),
	}, nil
}

func (f *fakeClient) MarkConversationRead(ctx context.Context, conversationID string) error {
	f.mu.Lock()
	f.MarkReadCalls = append(f.MarkReadCalls, conversationID)
	done := f.markReadDone
	err := f.MarkReadErr
	f.mu.Unlock()

	if done != nil {
		done <- conversationID
	}
	return err
}

func (f *fakeClient) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.SentPayloads...)
}

func (f *fakeClient) markReadCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.MarkReadCalls...)
}
