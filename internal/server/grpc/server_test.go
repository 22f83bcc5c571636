package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/logging"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"github.com/dmitrijs2005/tenantline/internal/server/auth"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func nopLogger() logging.Logger { return logging.NewNop() }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger(), &fakeUser{}, &fakeMessaging{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger(), &fakeUser{}, &fakeMessaging{}, "secret")
	assert.Error(t, srv.Run(context.Background()))
}

// dialBuf serves s over an in-memory listener with the production interceptor
// chain and returns a generated client bound to it.
func dialBuf(t *testing.T, s *GRPCServer) pb.MessagingClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterMessagingServer(srv, s)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewMessagingClient(conn)
}

func TestServer_OverTheWire(t *testing.T) {
	m := &fakeMessaging{sent: &models.Message{
		ID: "m1", ConversationID: "c1", SenderID: "u1", SenderName: "alice",
		Content: "enc:v1:a:b:c", Status: models.MessageStatusDelivered,
		CreatedAt: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}}
	s := NewGRPCServer("", nopLogger(), &fakeUser{}, m, testSecret)
	client := dialBuf(t, s)

	ping, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.SendMessage(context.Background(), &pb.SendMessageRequest{ConversationId: "c1", Content: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken(auth.Identity{UserID: "u1", Plan: "premium", Role: "tenant"}, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)

	resp, err := client.SendMessage(ctx, &pb.SendMessageRequest{ConversationId: "c1", Content: "enc:v1:a:b:c"})
	require.NoError(t, err)
	assert.Equal(t, "enc:v1:a:b:c", m.gotContent)
	assert.Equal(t, "m1", resp.GetMessage().GetId())
	assert.True(t, resp.GetMessage().GetCreatedAt().AsTime().Equal(m.sent.CreatedAt))

	free, err := auth.GenerateToken(auth.Identity{UserID: "u2", Plan: "free", Role: "tenant"}, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	ctx = metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, free)
	_, err = client.ListConversations(ctx, &pb.ListConversationsRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
