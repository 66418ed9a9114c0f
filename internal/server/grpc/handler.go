package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/akozlovs/bizkeeper/internal/common"
	pb "github.com/akozlovs/bizkeeper/internal/proto"
	"github.com/akozlovs/bizkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func profileToPb(p *models.Profile) *pb.Profile {
	return &pb.Profile{
		Id:             p.ID,
		Name:           p.Name,
		Industry:       p.Industry,
		Description:    p.Description,
		TargetAudience: p.TargetAudience,
		BrandVoice:     p.BrandVoice,
		Goals:          p.Goals,
		Website:        p.Website,
		CreatedAt:      p.CreatedAt.Unix(),
	}
}

func profileFromPb(p *pb.Profile) *models.Profile {
	return &models.Profile{
		ID:             p.Id,
		Name:           p.Name,
		Industry:       p.Industry,
		Description:    p.Description,
		TargetAudience: p.TargetAudience,
		BrandVoice:     p.BrandVoice,
		Goals:          p.Goals,
		Website:        p.Website,
		CreatedAt:      time.Unix(p.CreatedAt, 0),
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	account, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return &pb.RegisterResponse{UserId: account.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetProfiles(ctx context.Context, req *pb.GetProfilesRequest) (*pb.GetProfilesResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	result, err := s.profiles.GetProfiles(ctx, accountID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.GetProfilesResponse{}
	for _, p := range result {
		resp.Profiles = append(resp.Profiles, profileToPb(p))
	}
	return resp, nil
}

func (s *GRPCServer) PutProfile(ctx context.Context, req *pb.PutProfileRequest) (*pb.PutProfileResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if req.Profile == nil || req.Profile.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "profile id is required")
	}

	if err := s.profiles.PutProfile(ctx, accountID, profileFromPb(req.Profile)); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.PutProfileResponse{Ok: true}, nil
}

func (s *GRPCServer) PutProfiles(ctx context.Context, req *pb.PutProfilesRequest) (*pb.PutProfilesResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	profiles := make([]*models.Profile, 0, len(req.Profiles))
	for _, p := range req.Profiles {
		if p.Id == "" {
			return nil, status.Error(codes.InvalidArgument, "profile id is required")
		}
		profiles = append(profiles, profileFromPb(p))
	}

	if err := s.profiles.PutProfiles(ctx, accountID, profiles); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.PutProfilesResponse{Ok: true}, nil
}

func (s *GRPCServer) GetFeatureState(ctx context.Context, req *pb.GetFeatureStateRequest) (*pb.GetFeatureStateResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	doc, err := s.profiles.GetFeatureState(ctx, accountID, req.ProfileId, req.Domain)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.GetFeatureStateResponse{Found: false}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.GetFeatureStateResponse{Found: true, Document: doc}, nil
}

func (s *GRPCServer) PutFeatureState(ctx context.Context, req *pb.PutFeatureStateRequest) (*pb.PutFeatureStateResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if req.ProfileId == "" || req.Domain == "" {
		return nil, status.Error(codes.InvalidArgument, "profile id and domain are required")
	}

	if err := s.profiles.PutFeatureState(ctx, accountID, req.ProfileId, req.Domain, req.Document); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.PutFeatureStateResponse{Ok: true}, nil
}

func (s *GRPCServer) GetOnboardingStatus(ctx context.Context, req *pb.GetOnboardingStatusRequest) (*pb.GetOnboardingStatusResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	completed, err := s.profiles.HasCompletedOnboarding(ctx, accountID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.GetOnboardingStatusResponse{Completed: completed}, nil
}

func (s *GRPCServer) MarkOnboardingComplete(ctx context.Context, req *pb.MarkOnboardingCompleteRequest) (*pb.MarkOnboardingCompleteResponse, error) {

	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	if err := s.profiles.MarkOnboardingComplete(ctx, accountID); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.MarkOnboardingCompleteResponse{Ok: true}, nil
}
