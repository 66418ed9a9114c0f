package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/common"
	pb "github.com/akozlovs/bizkeeper/internal/proto"
)

// GRPCClient implements Store over the BizKeeperService gRPC API. It holds
// the token pair for the current session and transparently refreshes the
// access token when the server reports it expired.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.BizKeeperServiceClient

	// mu guards the token pair: the interceptor runs on background sync
	// goroutines while Login and ClearTokens run on the host goroutine
	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

var _ Store = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refresh == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
		if err != nil {
			return err
		}

		s.setTokens(refreshTokenResponse.AccessToken, refreshTokenResponse.RefreshToken)

		ctx = withAccessToken(ctx, refreshTokenResponse.AccessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBizKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// AccessToken returns the current access token, or "" before login.
func (s *GRPCClient) AccessToken() string {
	access, _ := s.tokens()
	return access
}

// ClearTokens forgets the session token pair.
func (s *GRPCClient) ClearTokens() {
	s.setTokens("", "")
}

func (s *GRPCClient) Register(ctx context.Context, email string, password string) error {
	req := &pb.RegisterRequest{Email: email, Password: password}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password string) error {
	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	resp, err := s.client.GetProfiles(ctx, &pb.GetProfilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	list := make([]models.Profile, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		list = append(list, profileFromPb(p))
	}
	return list, nil
}

func (s *GRPCClient) PutProfile(ctx context.Context, p models.Profile) error {
	req := &pb.PutProfileRequest{Profile: profileToPb(p)}

	if _, err := s.client.PutProfile(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) PutProfiles(ctx context.Context, list []models.Profile) error {
	req := &pb.PutProfilesRequest{Profiles: make([]*pb.Profile, 0, len(list))}
	for _, p := range list {
		req.Profiles = append(req.Profiles, profileToPb(p))
	}

	if _, err := s.client.PutProfiles(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetFeatureState(ctx context.Context, profileID string, domain models.Domain) (json.RawMessage, error) {
	req := &pb.GetFeatureStateRequest{ProfileId: profileID, Domain: string(domain)}

	resp, err := s.client.GetFeatureState(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if !resp.Found {
		return nil, common.ErrorNotFound
	}
	return json.RawMessage(resp.Document), nil
}

func (s *GRPCClient) PutFeatureState(ctx context.Context, profileID string, domain models.Domain, doc json.RawMessage) error {
	req := &pb.PutFeatureStateRequest{ProfileId: profileID, Domain: string(domain), Document: doc}

	if _, err := s.client.PutFeatureState(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	resp, err := s.client.GetOnboardingStatus(ctx, &pb.GetOnboardingStatusRequest{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Completed, nil
}

func (s *GRPCClient) MarkOnboardingComplete(ctx context.Context) error {
	if _, err := s.client.MarkOnboardingComplete(ctx, &pb.MarkOnboardingCompleteRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func profileToPb(p models.Profile) *pb.Profile {
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

func profileFromPb(p *pb.Profile) models.Profile {
	return models.Profile{
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
