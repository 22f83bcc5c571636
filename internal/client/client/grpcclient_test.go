package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/common"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastGetSaltReq      *pb.GetSaltRequest
	lastLoginReq        *pb.LoginRequest
	lastRegisterReq     *pb.RegisterUserRequest
	lastStartReq        *pb.StartConversationRequest
	lastListMsgReq      *pb.ListMessagesRequest
	lastSendReq         *pb.SendMessageRequest
	lastMarkReadReq     *pb.MarkConversationReadRequest

	// outputs preset
	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	getSaltResp *pb.GetSaltResponse
	getSaltErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerErr error

	listConvResp *pb.ListConversationsResponse
	listConvErr  error

	startResp *pb.StartConversationResponse
	startErr  error

	listMsgResp *pb.ListMessagesResponse
	listMsgErr  error

	sendResp *pb.SendMessageResponse
	sendErr  error

	markReadErr error
}

func (f *fakePB) RegisterUser(ctx context.Context, in *pb.RegisterUserRequest, opts ...grpc.CallOption) (*pb.RegisterUserResponse, error) {
	f.lastRegisterReq = in
	return &pb.RegisterUserResponse{}, f.registerErr
}
func (f *fakePB) GetSalt(ctx context.Context, in *pb.GetSaltRequest, opts ...grpc.CallOption) (*pb.GetSaltResponse, error) {
	f.lastGetSaltReq = in
	return f.getSaltResp, f.getSaltErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) ListConversations(ctx context.Context, in *pb.ListConversationsRequest, opts ...grpc.CallOption) (*pb.ListConversationsResponse, error) {
	return f.listConvResp, f.listConvErr
}
func (f *fakePB) StartConversation(ctx context.Context, in *pb.StartConversationRequest, opts ...grpc.CallOption) (*pb.StartConversationResponse, error) {
	f.lastStartReq = in
	return f.startResp, f.startErr
}
func (f *fakePB) ListMessages(ctx context.Context, in *pb.ListMessagesRequest, opts ...grpc.CallOption) (*pb.ListMessagesResponse, error) {
	f.lastListMsgReq = in
	return f.listMsgResp, f.listMsgErr
}
func (f *fakePB) SendMessage(ctx context.Context, in *pb.SendMessageRequest, opts ...grpc.CallOption) (*pb.SendMessageResponse, error) {
	f.lastSendReq = in
	return f.sendResp, f.sendErr
}
func (f *fakePB) MarkConversationRead(ctx context.Context, in *pb.MarkConversationReadRequest, opts ...grpc.CallOption) (*pb.MarkConversationReadResponse, error) {
	f.lastMarkReadReq = in
	return &pb.MarkConversationReadResponse{}, f.markReadErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.Messaging_SendMessage_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_SkipsRefreshWhenAlreadyRotated(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A2", refreshToken: "R2"}

	require.NoError(t, c.refresh(context.Background(), "R1"))
	require.Nil(t, f.lastRefreshTokenReq)
	require.Equal(t, "A2", c.accessToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_RefreshCallBypassesTokenInjection(t *testing.T) {
	c := &GRPCClient{accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.Messaging_RefreshToken_FullMethodName, nil, nil, nil, invoker))
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrForbidden)
	require.Equal(t, ErrNotFound, c.mapError(status.Error(codes.NotFound, "x")))
	require.Equal(t, ErrAlreadyExists, c.mapError(status.Error(codes.AlreadyExists, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "validation error: unknown role")), ErrInvalidArgument)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
	require.NoError(t, c.mapError(nil))
}

/*************
 * Auth tests
 *************/

func TestPing_OK(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestGetSalt_Success(t *testing.T) {
	f := &fakePB{getSaltResp: &pb.GetSaltResponse{Salt: []byte{1, 2, 3}}}
	c := &GRPCClient{client: f}
	salt, err := c.GetSalt(context.Background(), "u")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, salt)
	require.Equal(t, "u", f.lastGetSaltReq.Username)
}

func TestLogin_SetsTokensAndReturnsProfile(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{
		AccessToken: "A", RefreshToken: "R",
		UserId: "u-1", Username: "anna", Plan: "premium", Role: "tenant",
	}}
	c := &GRPCClient{client: f}

	p, err := c.Login(context.Background(), "anna", []byte{9})
	require.NoError(t, err)
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "anna", f.lastLoginReq.Username)
	require.Equal(t, []byte{9}, f.lastLoginReq.VerifierCandidate)
	require.Equal(t, "u-1", p.UserID)
	require.Equal(t, "premium", p.Plan)
	require.Equal(t, "tenant", p.Role)
}

func TestLogin_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{loginErr: status.Error(codes.Unauthenticated, "no")}}
	_, err := c.Login(context.Background(), "u", nil)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_PassesRole(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Register(context.Background(), "u", "landlord", []byte{1}, []byte{2}))
	require.Equal(t, "u", f.lastRegisterReq.Username)
	require.Equal(t, "landlord", f.lastRegisterReq.Role)
	require.Equal(t, []byte{1}, f.lastRegisterReq.Salt)
	require.Equal(t, []byte{2}, f.lastRegisterReq.Verifier)
}

func TestRegister_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{registerErr: status.Error(codes.Unavailable, "x")}}
	require.ErrorIs(t, c.Register(context.Background(), "u", "tenant", nil, nil), ErrUnavailable)
}

/*************
 * Messaging tests
 *************/

func TestListConversations_Maps(t *testing.T) {
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	f := &fakePB{listConvResp: &pb.ListConversationsResponse{Conversations: []*pb.Conversation{
		{Id: "c1", ParticipantId: "p1", ParticipantName: "Bob", LastMessage: "hi", LastMessageTime: timestamppb.New(at), UnreadCount: 2},
		nil,
		{Id: "c2", ParticipantName: "Eve", UnreadCount: -3},
	}}}
	c := &GRPCClient{client: f}

	got, err := c.ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c1", got[0].ID)
	require.Equal(t, "Bob", got[0].ParticipantName)
	require.Equal(t, at, got[0].LastMessageTime)
	require.Equal(t, 2, got[0].UnreadCount)
	require.Equal(t, 0, got[1].UnreadCount)
	require.True(t, got[1].LastMessageTime.IsZero())
}

func TestListConversations_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{listConvErr: status.Error(codes.PermissionDenied, "direct_messaging")}}
	_, err := c.ListConversations(context.Background())
	require.ErrorIs(t, err, ErrForbidden)
}

func TestStartConversation(t *testing.T) {
	f := &fakePB{startResp: &pb.StartConversationResponse{Conversation: &pb.Conversation{Id: "c9", ParticipantName: "Lena"}}}
	c := &GRPCClient{client: f}

	conv, err := c.StartConversation(context.Background(), "lena")
	require.NoError(t, err)
	require.Equal(t, "c9", conv.ID)
	require.Equal(t, "lena", f.lastStartReq.Participant)
}

func TestStartConversation_EmptyResponse(t *testing.T) {
	c := &GRPCClient{client: &fakePB{startResp: &pb.StartConversationResponse{}}}
	_, err := c.StartConversation(context.Background(), "x")
	require.Error(t, err)
}

func TestListMessages_UsesContentOrLegacyField(t *testing.T) {
	f := &fakePB{listMsgResp: &pb.ListMessagesResponse{Messages: []*pb.Message{
		{Id: "m1", ConversationId: "c1", SenderId: "s", Content: "enc:v1:a:b:c", Status: "read", CreatedAt: timestamppb.New(time.Unix(1700000000, 0))},
		{Id: "m2", ConversationId: "c1", Message: "old body"},
	}}}
	c := &GRPCClient{client: f}

	got, err := c.ListMessages(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", f.lastListMsgReq.GetConversationId())
	require.Len(t, got, 2)
	require.Equal(t, "enc:v1:a:b:c", got[0].Payload)
	require.Equal(t, "read", got[0].Status)
	require.True(t, got[0].Timestamp.Equal(time.Unix(1700000000, 0)))
	require.Equal(t, "old body", got[1].Payload)
}

func TestSendMessage(t *testing.T) {
	f := &fakePB{sendResp: &pb.SendMessageResponse{Message: &pb.Message{Id: "m7", ConversationId: "c1", Content: "x", Status: "delivered"}}}
	c := &GRPCClient{client: f}

	m, err := c.SendMessage(context.Background(), "c1", "payload")
	require.NoError(t, err)
	require.Equal(t, "m7", m.ID)
	require.Equal(t, "c1", f.lastSendReq.GetConversationId())
	require.Equal(t, "payload", f.lastSendReq.Content)
}

func TestSendMessage_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{sendErr: status.Error(codes.Unavailable, "x")}}
	_, err := c.SendMessage(context.Background(), "c1", "p")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMarkConversationRead(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.MarkConversationRead(context.Background(), "c1"))
	require.Equal(t, "c1", f.lastMarkReadReq.GetConversationId())

	f.markReadErr = status.Error(codes.NotFound, "x")
	require.ErrorIs(t, c.MarkConversationRead(context.Background(), "c1"), ErrNotFound)
}

func TestNewGRPCClient_DefaultsTimeout(t *testing.T) {
	c, err := NewGRPCClient("127.0.0.1:0", 0)
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, defaultRequestTimeout, c.requestTimeout)
}
