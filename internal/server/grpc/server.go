package grpc

import (
	"context"
	"net"

	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/logging"
	pb "github.com/snipvault/snipvault/internal/proto"
	"github.com/snipvault/snipvault/internal/server/models"
	"google.golang.org/grpc"
)

// The handler layer depends on exactly the service surface it calls, so
// tests can swap in fakes without a database behind them.

type deviceKeySvc interface {
	Register(ctx context.Context, userID, deviceID string, alg keys.Algorithm,
		encKey keys.PublicKeyJWK, signKey *keys.PublicKeyJWK, isDefault bool) (*models.DeviceKey, error)
	List(ctx context.Context, userID string) ([]*models.DeviceKey, error)
	Delete(ctx context.Context, userID, deviceID string) error
	ClearForUser(ctx context.Context, userID string) error
}

type handshakeSvc interface {
	Initiate(ctx context.Context, clientKey keys.PublicKeyJWK) (string, keys.PublicKeyJWK, error)
	AttachPayload(ctx context.Context, id string, payload, iv []byte) error
	Retrieve(ctx context.Context, id string) (payload, iv []byte, err error)
}

type teamSvc interface {
	ResolveDefault(ctx context.Context, teamID, callerID string) (*models.DeviceKey, error)
	ResolveAllMembers(ctx context.Context, teamID, callerID string) ([]*models.DeviceKey, error)
	AddMember(ctx context.Context, teamID, callerID, userID, role string) error
	RemoveMember(ctx context.Context, teamID, callerID, userID string) error
}

type snippetSvc interface {
	Create(ctx context.Context, snippet *models.Snippet, wrappedKeys []*models.WrappedKey) (*models.Snippet, string, error)
	Get(ctx context.Context, snippetID, callerID, deviceID string) (*models.Snippet, *models.WrappedKey, string, error)
	List(ctx context.Context, callerID string) ([]*models.Snippet, error)
}

type GRPCServer struct {
	pb.UnimplementedSnipVaultServiceServer
	address    string
	deviceKeys deviceKeySvc
	handshakes handshakeSvc
	teams      teamSvc
	snippets   snippetSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, dk deviceKeySvc, hs handshakeSvc,
	tm teamSvc, sn snippetSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		deviceKeys: dk,
		handshakes: hs,
		teams:      tm,
		snippets:   sn,
		jwtSecret:  []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterSnipVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
