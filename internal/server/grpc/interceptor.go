package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// identityInterceptor attaches the bearer identity from the "authorization"
// metadata, if any. Calls are never rejected.
func (s *GRPCServer) identityInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok && s.authn != nil {
		values := md.Get(strings.ToLower(common.AuthorizationHeaderName))
		if len(values) > 0 {
			token := strings.TrimPrefix(values[0], common.BearerPrefix)
			if id := s.authn.Authenticate(ctx, token); id != nil {
				ctx = auth.WithIdentity(ctx, id)
			}
		}
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	args := []any{"method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start)}
	if id := auth.IdentityFromContext(ctx); id != nil {
		args = append(args, "username", id.Username)
	}
	s.logger.Debug(ctx, "grpc call", args...)

	return resp, err
}
