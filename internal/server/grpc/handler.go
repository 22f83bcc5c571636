package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tenantline/internal/common"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Anything unrecognised is
// logged and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	id, ok := identityFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing identity")
	}
	return id.UserID, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	u, err := s.users.Register(ctx, req.Username, req.Role, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}
	return &pb.RegisterUserResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "get salt", err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	pair, user, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return &pb.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserId:       user.ID,
		Username:     user.UserName,
		Plan:         user.Plan,
		Role:         user.Role,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	uid, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.messaging.ListConversations(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, "list conversations", err)
	}
	out := make([]*pb.Conversation, 0, len(list))
	for _, c := range list {
		out = append(out, toWireConversation(c))
	}
	return &pb.ListConversationsResponse{Conversations: out}, nil
}

func (s *GRPCServer) StartConversation(ctx context.Context, req *pb.StartConversationRequest) (*pb.StartConversationResponse, error) {
	uid, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.messaging.StartConversation(ctx, uid, req.Participant)
	if err != nil {
		return nil, s.toStatus(ctx, "start conversation", err)
	}
	return &pb.StartConversationResponse{Conversation: toWireConversation(c)}, nil
}

func (s *GRPCServer) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	uid, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.messaging.ListMessages(ctx, uid, req.GetConversationId())
	if err != nil {
		return nil, s.toStatus(ctx, "list messages", err)
	}
	out := make([]*pb.Message, 0, len(list))
	for _, m := range list {
		out = append(out, toWireMessage(m))
	}
	return &pb.ListMessagesResponse{Messages: out}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	uid, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.messaging.SendMessage(ctx, uid, req.GetConversationId(), req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, "send message", err)
	}
	return &pb.SendMessageResponse{Message: toWireMessage(m)}, nil
}

func (s *GRPCServer) MarkConversationRead(ctx context.Context, req *pb.MarkConversationReadRequest) (*pb.MarkConversationReadResponse, error) {
	uid, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.messaging.MarkRead(ctx, uid, req.GetConversationId()); err != nil {
		return nil, s.toStatus(ctx, "mark read", err)
	}
	return &pb.MarkConversationReadResponse{}, nil
}

func toWireConversation(c *models.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:              c.ID,
		ParticipantId:   c.ParticipantID,
		ParticipantName: c.ParticipantName,
		LastMessage:     c.LastMessage,
		LastMessageTime: timestamppb.New(c.LastMessageTime),
		UnreadCount:     int32(c.UnreadCount),
	}
}

func toWireMessage(m *models.Message) *pb.Message {
	return &pb.Message{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		SenderId:       m.SenderID,
		SenderName:     m.SenderName,
		Content:        m.Content,
		Status:         m.Status,
		CreatedAt:      timestamppb.New(m.CreatedAt),
	}
}
