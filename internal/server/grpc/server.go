// Package grpc exposes the messaging service over gRPC using the generated
// bindings from internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tenantline/internal/logging"
	pb "github.com/dmitrijs2005/tenantline/internal/proto"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"github.com/dmitrijs2005/tenantline/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username, role string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, *models.User, error)
}

type messagingSvc interface {
	ListConversations(ctx context.Context, userID string) ([]*models.Conversation, error)
	StartConversation(ctx context.Context, userID, participant string) (*models.Conversation, error)
	ListMessages(ctx context.Context, userID, conversationID string) ([]*models.Message, error)
	SendMessage(ctx context.Context, userID, conversationID, content string) (*models.Message, error)
	MarkRead(ctx context.Context, userID, conversationID string) error
}

type GRPCServer struct {
	pb.UnimplementedMessagingServer
	address   string
	users     userSvc
	messaging messagingSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ms messagingSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		messaging: ms,
		jwtSecret: []byte(secretKey),
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterMessagingServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
