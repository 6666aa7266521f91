package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"internhub/internal/portal"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired, log in again")
)

type Session struct {
	Token  string      `json:"token"`
	Role   portal.Role `json:"role"`
	UserID string      `json:"user_id"`
	Email  string      `json:"email,omitempty"`
	Name   string      `json:"name,omitempty"`
}

// Store persists the session and the last fetched record lists.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
	SaveList(ctx context.Context, key string, data []byte) error
	LoadList(ctx context.Context, key string) ([]byte, error)
}

// Identity is what the token claims about its holder. The claim is read
// without verifying the signature; the backend does that.
type Identity struct {
	UserID    string
	Role      portal.Role
	Email     string
	ExpiresAt time.Time
}

func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

type tokenClaims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func DecodeIdentity(token string) (Identity, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), &claims); err != nil {
		return Identity{}, fmt.Errorf("decode token: %w", err)
	}
	identity := Identity{
		UserID: claims.UserID,
		Role:   portal.Role(strings.ToLower(strings.TrimSpace(claims.Role))),
		Email:  claims.Email,
	}
	if identity.UserID == "" {
		identity.UserID = claims.Subject
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Accessor reads the persisted session on behalf of the API client.
type Accessor struct {
	store Store
	now   func() time.Time
}

func NewAccessor(store Store) *Accessor {
	return &Accessor{store: store, now: time.Now}
}

// Token implements client.TokenSource.
func (a *Accessor) Token(ctx context.Context) (string, error) {
	s, err := a.store.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if s.Token == "" {
		return "", nil
	}
	if identity, err := DecodeIdentity(s.Token); err == nil && identity.Expired(a.now()) {
		return "", ErrExpired
	}
	return s.Token, nil
}

// Current returns the stored session and the identity its token claims.
// Opaque tokens yield an identity built from the stored fields.
func (a *Accessor) Current(ctx context.Context) (Session, Identity, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return Session{}, Identity{}, err
	}
	identity, err := DecodeIdentity(s.Token)
	if err != nil {
		identity = Identity{UserID: s.UserID, Role: s.Role, Email: s.Email}
	}
	if identity.Expired(a.now()) {
		return s, identity, ErrExpired
	}
	return s, identity, nil
}

// Login persists a fresh session, filling role and user id from the token
// claim when the backend omitted them.
func (a *Accessor) Login(ctx context.Context, result portal.LoginResult, email string) (Session, error) {
	s := Session{
		Token:  result.Token,
		Role:   result.Role,
		UserID: result.UserID,
		Email:  email,
		Name:   result.Name,
	}
	if identity, err := DecodeIdentity(result.Token); err == nil {
		if s.UserID == "" {
			s.UserID = identity.UserID
		}
		if s.Role == "" {
			s.Role = identity.Role
		}
		if s.Email == "" {
			s.Email = identity.Email
		}
	}
	if err := a.store.Save(ctx, s); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

func (a *Accessor) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
