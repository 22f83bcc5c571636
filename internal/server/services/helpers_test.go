package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/conversations"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/messages"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	mu      sync.Mutex
	created []*models.User

	createErr error
	byLogin   map[string]*models.User
	byID      map[string]*models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = "id-" + u.UserName
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byLogin[login]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeRefreshRepo struct {
	consumeOut *models.RefreshToken
	consumeErr error
	createErr  error
	pruneErr   error

	created []string
	pruned  []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, userID+":"+token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	return f.consumeOut, f.consumeErr
}

func (f *fakeRefreshRepo) Consume(context.Context, string) (*models.RefreshToken, error) {
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	return f.consumeOut, nil
}

func (f *fakeRefreshRepo) Delete(context.Context, string) error { return nil }

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, userID string) (int64, error) {
	if f.pruneErr != nil {
		return 0, f.pruneErr
	}
	f.pruned = append(f.pruned, userID)
	return 1, nil
}

type fakeConversationsRepo struct {
	members map[string][]string
	convs   map[string]*models.Conversation

	findOrCreateErr error
	listErr         error
	memberErr       error
	markErr         error

	marked []string
}

func (f *fakeConversationsRepo) FindOrCreate(_ context.Context, userID, otherID string) (string, error) {
	if f.findOrCreateErr != nil {
		return "", f.findOrCreateErr
	}
	id := "conv-" + userID + "-" + otherID
	if f.members == nil {
		f.members = map[string][]string{}
	}
	f.members[id] = []string{userID, otherID}
	if f.convs == nil {
		f.convs = map[string]*models.Conversation{}
	}
	f.convs[id] = &models.Conversation{ID: id, ParticipantID: otherID}
	return id, nil
}

func (f *fakeConversationsRepo) ListForUser(_ context.Context, userID string) ([]*models.Conversation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Conversation
	for id, m := range f.members {
		for _, u := range m {
			if u == userID {
				out = append(out, f.convs[id])
			}
		}
	}
	return out, nil
}

func (f *fakeConversationsRepo) GetForUser(_ context.Context, id, _ string) (*models.Conversation, error) {
	if c, ok := f.convs[id]; ok {
		return c, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeConversationsRepo) IsMember(_ context.Context, id, userID string) (bool, error) {
	if f.memberErr != nil {
		return false, f.memberErr
	}
	for _, u := range f.members[id] {
		if u == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeConversationsRepo) MarkRead(_ context.Context, id, userID string) error {
	if f.markErr != nil {
		return f.markErr
	}
	ok, _ := f.IsMember(context.Background(), id, userID)
	if !ok {
		return common.ErrorNotFound
	}
	f.marked = append(f.marked, id+":"+userID)
	return nil
}

type fakeMessagesRepo struct {
	stored    []*models.Message
	createErr error
	listErr   error
}

func (f *fakeMessagesRepo) Create(_ context.Context, convID, senderID, content string) (*models.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m := &models.Message{
		ID:             "m" + string(rune('0'+len(f.stored)+1)),
		ConversationID: convID,
		SenderID:       senderID,
		Content:        content,
		Status:         models.MessageStatusDelivered,
		CreatedAt:      time.Now(),
	}
	f.stored = append(f.stored, m)
	return m, nil
}

func (f *fakeMessagesRepo) ListByConversation(_ context.Context, convID string) ([]*models.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Message
	for _, m := range f.stored {
		if m.ConversationID == convID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	c *fakeConversationsRepo
	m *fakeMessagesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Conversations(dbx.DBTX) conversations.Repository { return m.c }
func (m *fakeRepoManager) Messages(dbx.DBTX) messages.Repository { return m.m }
