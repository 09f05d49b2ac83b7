package grpc

import (
	"context"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey carries the authenticated caller's user id through handler
// contexts once the interceptor has verified the access token.
const UserIDKey ctxKey = "userID"

// Pairing runs before a device holds any token, so the handshake methods
// stay open. Everything else requires a bearer access token.
var unauthenticatedMethods = map[string]bool{
	"/snipvault.service.SnipVaultService/Ping":                     true,
	"/snipvault.service.SnipVaultService/InitiateHandshake":        true,
	"/snipvault.service.SnipVaultService/AttachHandshakePayload":   true,
	"/snipvault.service.SnipVaultService/RetrieveHandshakePayload": true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !unauthenticatedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userId, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userId)

	}

	return handler(ctx, req)
}

// callerID extracts the user id the interceptor stored. Handlers on
// authenticated methods can rely on it being present.
func callerID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(UserIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing caller identity")
	}
	return id, nil
}
