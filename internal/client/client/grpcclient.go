package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/common"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const defaultRequestTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.MessagingClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// refresh rotates the token pair once. If another call already rotated
// the pair away from usedRefresh, the current tokens are kept.
func (s *GRPCClient) refresh(ctx context.Context, usedRefresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshToken != usedRefresh {
		return nil
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: usedRefresh})
	if err != nil {
		return err
	}
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.Messaging_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	if err := s.refresh(ctx, refresh); err != nil {
		return err
	}

	// tokens refreshed, retrying with the new access token
	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; the first RPC establishes the
// connection. A non-positive requestTimeout uses the default.
func NewGRPCClient(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMessagingClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.requestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName string, role string, salt []byte, verifier []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterUserRequest{Username: userName, Role: role, Salt: salt, Verifier: verifier}
	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) (*models.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, VerifierCandidate: verifier})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return &models.Profile{
		UserID:   resp.GetUserId(),
		UserName: resp.Username,
		Plan:     resp.Plan,
		Role:     resp.Role,
	}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListConversations(ctx, &pb.ListConversationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Conversation, 0, len(resp.Conversations))
	for _, c := range resp.Conversations {
		if c == nil {
			continue
		}
		result = append(result, conversationFromWire(c))
	}
	return result, nil
}

func (s *GRPCClient) StartConversation(ctx context.Context, participant string) (*models.Conversation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.StartConversation(ctx, &pb.StartConversationRequest{Participant: participant})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Conversation == nil {
		return nil, fmt.Errorf("rpc error: empty conversation in response")
	}

	c := conversationFromWire(resp.Conversation)
	return &c, nil
}

func (s *GRPCClient) ListMessages(ctx context.Context, conversationID string) ([]models.WireMessage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conversationID})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.WireMessage, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if m == nil {
			continue
		}
		result = append(result, messageFromWire(m))
	}
	return result, nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, conversationID string, payload string) (*models.WireMessage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SendMessage(ctx, &pb.SendMessageRequest{ConversationId: conversationID, Content: payload})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Message == nil {
		return nil, fmt.Errorf("rpc error: empty message in response")
	}

	m := messageFromWire(resp.Message)
	return &m, nil
}

func (s *GRPCClient) MarkConversationRead(ctx context.Context, conversationID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.MarkConversationRead(ctx, &pb.MarkConversationReadRequest{ConversationId: conversationID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func conversationFromWire(c *pb.Conversation) models.Conversation {
	conv := models.Conversation{
		ID:              c.GetId(),
		ParticipantID:   c.GetParticipantId(),
		ParticipantName: c.GetParticipantName(),
		LastMessage:     c.GetLastMessage(),
		UnreadCount:     max(int(c.GetUnreadCount()), 0),
	}
	if ts := c.GetLastMessageTime(); ts != nil {
		conv.LastMessageTime = ts.AsTime()
	}
	return conv
}

func messageFromWire(m *pb.Message) models.WireMessage {
	msg := models.WireMessage{
		ID:             m.GetId(),
		ConversationID: m.GetConversationId(),
		SenderID:       m.GetSenderId(),
		SenderName:     m.GetSenderName(),
		Payload:        m.Body(),
		Status:         m.GetStatus(),
	}
	if ts := m.GetCreatedAt(); ts != nil {
		msg.Timestamp = ts.AsTime()
	}
	return msg
}
