package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/client/services"
	"github.com/dmitrijs2005/tenantline/internal/logging"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubSecret(t *testing.T, secret string) {
	t.Helper()
	orig := getSecret
	getSecret = func(io.Writer, string) ([]byte, error) { return []byte(secret), nil }
	t.Cleanup(func() { getSecret = orig })
}

type fakeAuth struct {
	regUser string
	regRole string
	regPass []byte
	regErr  error

	onlineUser    string
	onlineMK      []byte
	onlineProfile *models.Profile
	onlineErr     error

	offlineUser string
	offlineMK   []byte
	offlineErr  error

	clearCalled bool
	clearErr    error
}

func (f *fakeAuth) Register(_ context.Context, user, role string, pass []byte) error {
	f.regUser, f.regRole, f.regPass = user, role, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) ([]byte, *models.Profile, error) {
	f.onlineUser = user
	return f.onlineMK, f.onlineProfile, f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, pass []byte) ([]byte, error) {
	f.offlineUser = user
	return f.offlineMK, f.offlineErr
}
func (f *fakeAuth) ClearOfflineData(context.Context) error {
	f.clearCalled = true
	return f.clearErr
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error  { return nil }

// fakeClient is a transport stub for the messaging commands.
type fakeClient struct {
	mu            sync.Mutex
	conversations []models.Conversation
	history       map[string][]models.WireMessage
	sendErr       error
	sent          []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                                                    { return nil }
func (f *fakeClient) Register(context.Context, string, string, []byte, []byte) error  { return nil }
func (f *fakeClient) GetSalt(context.Context, string) ([]byte, error)                 { return nil, nil }
func (f *fakeClient) Login(context.Context, string, []byte) (*models.Profile, error)  { return nil, nil }
func (f *fakeClient) Ping(context.Context) error                                      { return nil }
func (f *fakeClient) MarkConversationRead(context.Context, string) error              { return nil }
func (f *fakeClient) ListConversations(context.Context) ([]models.Conversation, error) {
	return f.conversations, nil
}
func (f *fakeClient) StartConversation(_ context.Context, participant string) (*models.Conversation, error) {
	c := models.Conversation{ID: "new-" + participant, ParticipantName: participant}
	return &c, nil
}
func (f *fakeClient) ListMessages(_ context.Context, id string) ([]models.WireMessage, error) {
	return f.history[id], nil
}
func (f *fakeClient) SendMessage(_ context.Context, id, payload string) (*models.WireMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, payload)
	return &models.WireMessage{
		ID: fmt.Sprintf("srv-%d", len(f.sent)), ConversationID: id, SenderID: "u-1",
		Payload: payload, Status: "delivered", Timestamp: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC),
	}, nil
}

func (f *fakeClient) sentPayloads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

// newTestApp returns a logged-in online App over a temp database.
func newTestApp(t *testing.T, profile *models.Profile, fc *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var out bytes.Buffer
	a := &App{
		log:         logging.NewNop(),
		authService: &fakeAuth{},
		client:      fc,
		session:     services.NewSession(db),
		masterKey:   []byte{1},
		userName:    "anna",
		profile:     profile,
		mode:        ModeOnline,
		out:         &out,
	}
	t.Cleanup(a.closeMessenger)
	return a, &out
}
