package grpc

import (
	"context"
	"errors"

	"github.com/akozlovs/bizkeeper/internal/common"
	pb "github.com/akozlovs/bizkeeper/internal/proto"
	"github.com/akozlovs/bizkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// publicMethods do not require an access token.
var publicMethods = map[string]struct{}{
	pb.BizKeeperService_Register_FullMethodName:     {},
	pb.BizKeeperService_Login_FullMethodName:        {},
	pb.BizKeeperService_RefreshToken_FullMethodName: {},
	pb.BizKeeperService_Ping_FullMethodName:         {},
}

// accessTokenInterceptor authenticates every non-public call and stores the
// account id in the context. Expired tokens are reported with the exact
// ErrTokenExpired message so the client interceptor can trigger a refresh.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

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

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, accountIDKey, claims.AccountID)

	return handler(ctx, req)
}

// accountIDFromContext returns the authenticated account id stored by the
// interceptor.
func accountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok && id != ""
}
