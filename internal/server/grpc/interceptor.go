package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"github.com/dmitrijs2005/tenantline/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// IdentityKey holds the auth.Identity of the caller on protected methods.
const IdentityKey ctxKey = "identity"

// publicMethods are reachable without an access token.
var publicMethods = map[string]bool{
	pb.Messaging_RegisterUser_FullMethodName: true,
	pb.Messaging_GetSalt_FullMethodName:      true,
	pb.Messaging_Login_FullMethodName:        true,
	pb.Messaging_RefreshToken_FullMethodName: true,
	pb.Messaging_Ping_FullMethodName:         true,
}

// methodFeatures maps protected methods to the entitlement they need.
var methodFeatures = map[string]string{
	pb.Messaging_ListConversations_FullMethodName:    entitlements.FeatureDirectMessaging,
	pb.Messaging_StartConversation_FullMethodName:    entitlements.FeatureDirectMessaging,
	pb.Messaging_ListMessages_FullMethodName:         entitlements.FeatureDirectMessaging,
	pb.Messaging_SendMessage_FullMethodName:          entitlements.FeatureDirectMessaging,
	pb.Messaging_MarkConversationRead_FullMethodName: entitlements.FeatureDirectMessaging,
}

// accessTokenInterceptor authenticates every non-public method and enforces
// the method's entitlement using the plan and role carried by the token.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	if feature, ok := methodFeatures[info.FullMethod]; ok {
		if err := entitlements.Require(id.Plan, id.Role, feature); err != nil {
			return nil, status.Error(codes.PermissionDenied, err.Error())
		}
	}

	return handler(context.WithValue(ctx, IdentityKey, id), req)
}

// loggingInterceptor records every call with its outcome and latency.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Debug(ctx, "rpc", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc", append(args, "error", err)...)
	default:
		s.logger.Info(ctx, "rpc", args...)
	}
	return resp, err
}

func identityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(auth.Identity)
	return id, ok && id.UserID != ""
}
