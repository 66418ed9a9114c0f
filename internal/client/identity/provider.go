// Package identity tracks who is signed in on this client. The snapshot is
// derived from the access token claims, so no extra round trip is needed
// after login.
package identity

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/remote"
)

// Provider exposes the current identity and change notifications.
type Provider interface {
	Current() models.IdentitySnapshot
	OnChange(fn func(models.IdentitySnapshot))
	SignOut(ctx context.Context) error
}

type tokenClaims struct {
	jwt.RegisteredClaims
	AccountID        string `json:"account_id"`
	Email            string `json:"email"`
	AccountCreatedAt int64  `json:"account_created_at"`
}

// GRPCProvider authenticates against the server through the shared
// GRPCClient and derives snapshots from the issued access token.
type GRPCProvider struct {
	client *remote.GRPCClient

	mu   sync.Mutex
	snap models.IdentitySnapshot
	subs []func(models.IdentitySnapshot)
}

var _ Provider = (*GRPCProvider)(nil)

func NewGRPCProvider(client *remote.GRPCClient) *GRPCProvider {
	return &GRPCProvider{client: client}
}

// Login authenticates and publishes the new identity snapshot.
func (p *GRPCProvider) Login(ctx context.Context, email, password string) error {
	if err := p.client.Login(ctx, email, password); err != nil {
		return err
	}
	return p.adoptToken(p.client.AccessToken())
}

// Register creates the account and signs it in.
func (p *GRPCProvider) Register(ctx context.Context, email, password string) error {
	if err := p.client.Register(ctx, email, password); err != nil {
		return err
	}
	return p.Login(ctx, email, password)
}

func (p *GRPCProvider) Current() models.IdentitySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

func (p *GRPCProvider) OnChange(fn func(models.IdentitySnapshot)) {
	p.mu.Lock()
	p.subs = append(p.subs, fn)
	p.mu.Unlock()
}

// SignOut forgets the token pair and publishes an unauthenticated snapshot.
func (p *GRPCProvider) SignOut(ctx context.Context) error {
	if p.client != nil {
		p.client.ClearTokens()
	}
	p.publish(models.IdentitySnapshot{})
	return nil
}

// adoptToken parses the access token without verifying its signature (the
// server already did) and publishes the identity it carries.
func (p *GRPCProvider) adoptToken(token string) error {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return err
	}

	p.publish(models.IdentitySnapshot{
		PrincipalID:     claims.AccountID,
		Email:           claims.Email,
		CreatedAt:       time.Unix(claims.AccountCreatedAt, 0),
		IsAuthenticated: true,
	})
	return nil
}

func (p *GRPCProvider) publish(snap models.IdentitySnapshot) {
	p.mu.Lock()
	p.snap = snap
	subs := make([]func(models.IdentitySnapshot), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
