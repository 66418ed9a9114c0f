// Package grpc exposes the BizKeeper document service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/akozlovs/bizkeeper/internal/logging"
	pb "github.com/akozlovs/bizkeeper/internal/proto"
	"github.com/akozlovs/bizkeeper/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedBizKeeperServiceServer
	address   string
	users     *services.UserService
	profiles  *services.ProfileService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(addr string, l logging.Logger, us *services.UserService, ps *services.ProfileService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   addr,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		profiles:  ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterBizKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
