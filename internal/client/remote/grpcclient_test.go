package remote

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/common"
	pb "github.com/akozlovs/bizkeeper/internal/proto"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastRefreshTokenReq    *pb.RefreshTokenRequest
	lastRegisterReq        *pb.RegisterRequest
	lastLoginReq           *pb.LoginRequest
	lastPingReq            *pb.PingRequest
	lastPutProfileReq      *pb.PutProfileRequest
	lastPutProfilesReq     *pb.PutProfilesRequest
	lastGetFeatureStateReq *pb.GetFeatureStateRequest
	lastPutFeatureStateReq *pb.PutFeatureStateRequest

	// outputs preset
	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	registerErr error

	loginResp *pb.LoginResponse
	loginErr  error

	pingResp *pb.PingResponse
	pingErr  error

	getProfilesResp *pb.GetProfilesResponse
	getProfilesErr  error

	putProfileErr  error
	putProfilesErr error

	getFeatureStateResp *pb.GetFeatureStateResponse
	getFeatureStateErr  error

	putFeatureStateErr error

	onboardingStatusResp *pb.GetOnboardingStatusResponse
	onboardingStatusErr  error

	markOnboardingErr error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	return &pb.RegisterResponse{}, f.registerErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	f.lastPingReq = in
	return f.pingResp, f.pingErr
}
func (f *fakePB) GetProfiles(ctx context.Context, in *pb.GetProfilesRequest, opts ...grpc.CallOption) (*pb.GetProfilesResponse, error) {
	return f.getProfilesResp, f.getProfilesErr
}
func (f *fakePB) PutProfile(ctx context.Context, in *pb.PutProfileRequest, opts ...grpc.CallOption) (*pb.PutProfileResponse, error) {
	f.lastPutProfileReq = in
	return &pb.PutProfileResponse{Ok: true}, f.putProfileErr
}
func (f *fakePB) PutProfiles(ctx context.Context, in *pb.PutProfilesRequest, opts ...grpc.CallOption) (*pb.PutProfilesResponse, error) {
	f.lastPutProfilesReq = in
	return &pb.PutProfilesResponse{Ok: true}, f.putProfilesErr
}
func (f *fakePB) GetFeatureState(ctx context.Context, in *pb.GetFeatureStateRequest, opts ...grpc.CallOption) (*pb.GetFeatureStateResponse, error) {
	f.lastGetFeatureStateReq = in
	return f.getFeatureStateResp, f.getFeatureStateErr
}
func (f *fakePB) PutFeatureState(ctx context.Context, in *pb.PutFeatureStateRequest, opts ...grpc.CallOption) (*pb.PutFeatureStateResponse, error) {
	f.lastPutFeatureStateReq = in
	return &pb.PutFeatureStateResponse{Ok: true}, f.putFeatureStateErr
}
func (f *fakePB) GetOnboardingStatus(ctx context.Context, in *pb.GetOnboardingStatusRequest, opts ...grpc.CallOption) (*pb.GetOnboardingStatusResponse, error) {
	return f.onboardingStatusResp, f.onboardingStatusErr
}
func (f *fakePB) MarkOnboardingComplete(ctx context.Context, in *pb.MarkOnboardingCompleteRequest, opts ...grpc.CallOption) (*pb.MarkOnboardingCompleteResponse, error) {
	return &pb.MarkOnboardingCompleteResponse{Ok: true}, f.markOnboardingErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * Auth tests
 *************/

func TestLogin_SetsTokens(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Login(context.Background(), "user@example.com", "pw"))
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "user@example.com", f.lastLoginReq.Email)
}

func TestRegister_MapsError(t *testing.T) {
	f := &fakePB{registerErr: status.Error(codes.PermissionDenied, "no")}
	c := &GRPCClient{client: f}
	err := c.Register(context.Background(), "user@example.com", "pw")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "user@example.com", f.lastRegisterReq.Email)
}

func TestClearTokens(t *testing.T) {
	c := &GRPCClient{accessToken: "A", refreshToken: "R"}
	c.ClearTokens()
	require.Empty(t, c.AccessToken())
	require.Empty(t, c.refreshToken)
}

// lockedPB serializes the request capture so concurrent callers only race
// on the client under test.
type lockedPB struct {
	*fakePB
	mu sync.Mutex
}

func (l *lockedPB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakePB.Login(ctx, in, opts...)
}

func (l *lockedPB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakePB.RefreshToken(ctx, in, opts...)
}

func TestTokenPairSafeForConcurrentUse(t *testing.T) {
	f := &lockedPB{fakePB: &fakePB{
		loginResp:        &pb.LoginResponse{AccessToken: "A1", RefreshToken: "R1"},
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}}
	c := &GRPCClient{client: f}

	expired := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		if toks := md.Get(common.AccessTokenHeaderName); len(toks) == 1 && toks[0] == "A2" {
			return nil
		}
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Login(context.Background(), "user@example.com", "pw")
			_ = c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, expired)
			_ = c.AccessToken()
		}()
	}
	wg.Wait()

	c.ClearTokens()
	require.Empty(t, c.AccessToken())
}

/*************
 * Ping tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * Profile tests
 *************/

func TestGetProfiles_MapsResponse(t *testing.T) {
	f := &fakePB{getProfilesResp: &pb.GetProfilesResponse{Profiles: []*pb.Profile{
		{Id: "p1", Name: "Acme", Industry: "retail", CreatedAt: 1700000000},
		{Id: "p2", Name: "Beta"},
	}}}
	c := &GRPCClient{client: f}

	list, err := c.GetProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "p1", list[0].ID)
	require.Equal(t, "Acme", list[0].Name)
	require.Equal(t, time.Unix(1700000000, 0), list[0].CreatedAt)
}

func TestGetProfiles_MapsError(t *testing.T) {
	f := &fakePB{getProfilesErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	_, err := c.GetProfiles(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPutProfile_MapsRequest(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	created := time.Unix(1700000000, 0)
	err := c.PutProfile(context.Background(), models.Profile{ID: "p1", Name: "Acme", CreatedAt: created})
	require.NoError(t, err)
	require.Equal(t, "p1", f.lastPutProfileReq.Profile.Id)
	require.Equal(t, created.Unix(), f.lastPutProfileReq.Profile.CreatedAt)
}

func TestPutProfiles_MapsRequest(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	err := c.PutProfiles(context.Background(), []models.Profile{{ID: "p1"}, {ID: "p2"}})
	require.NoError(t, err)
	require.Len(t, f.lastPutProfilesReq.Profiles, 2)
	require.Equal(t, "p2", f.lastPutProfilesReq.Profiles[1].Id)
}

/*************
 * Feature state tests
 *************/

func TestGetFeatureState_Found(t *testing.T) {
	doc := json.RawMessage(`{"posts":[]}`)
	f := &fakePB{getFeatureStateResp: &pb.GetFeatureStateResponse{Found: true, Document: doc}}
	c := &GRPCClient{client: f}

	got, err := c.GetFeatureState(context.Background(), "p1", models.DomainBlog)
	require.NoError(t, err)
	require.JSONEq(t, string(doc), string(got))
	require.Equal(t, "p1", f.lastGetFeatureStateReq.ProfileId)
	require.Equal(t, "blog", f.lastGetFeatureStateReq.Domain)
}

func TestGetFeatureState_NotFound(t *testing.T) {
	f := &fakePB{getFeatureStateResp: &pb.GetFeatureStateResponse{Found: false}}
	c := &GRPCClient{client: f}

	_, err := c.GetFeatureState(context.Background(), "p1", models.DomainBlog)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPutFeatureState_MapsRequest(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	doc := json.RawMessage(`{"k":1}`)
	require.NoError(t, c.PutFeatureState(context.Background(), "p1", models.DomainCalendar, doc))
	require.Equal(t, "p1", f.lastPutFeatureStateReq.ProfileId)
	require.Equal(t, "calendar", f.lastPutFeatureStateReq.Domain)
	require.JSONEq(t, string(doc), string(f.lastPutFeatureStateReq.Document))
}

/*************
 * Onboarding tests
 *************/

func TestHasCompletedOnboarding(t *testing.T) {
	f := &fakePB{onboardingStatusResp: &pb.GetOnboardingStatusResponse{Completed: true}}
	c := &GRPCClient{client: f}

	done, err := c.HasCompletedOnboarding(context.Background())
	require.NoError(t, err)
	require.True(t, done)
}

func TestMarkOnboardingComplete_MapsError(t *testing.T) {
	f := &fakePB{markOnboardingErr: status.Error(codes.Unauthenticated, "x")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.MarkOnboardingComplete(context.Background()), ErrUnauthorized)
}
