package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// UnaryInterceptor handles JWT validation for incoming unary gRPC calls.
// Every unary method of the chat service requires a token; the Connect
// stream authenticates separately through BearerFromContext.
func UnaryInterceptor(ctx context.Context, req any,
	_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token, err := BearerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := ValidateToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	// Inject user identity into context for downstream service layers.
	return handler(context.WithValue(ctx, UserIDKey, claims.UserID), req)
}

// BearerFromContext extracts the raw bearer token from incoming gRPC
// metadata, for handlers that validate it themselves.
func BearerFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	return strings.TrimPrefix(values[0], "Bearer "), nil
}

// UserIDFromContext returns the authenticated user injected by the
// interceptor. The second return is false on an unauthenticated context,
// which means a server wiring bug rather than a client mistake.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
