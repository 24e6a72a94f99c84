package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

// Identity is the caller resolved from a session cookie.
type Identity struct {
	UserID    string
	SessionID string
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type AuthService struct {
	Users    repo.UserRepository
	Sessions SessionStore
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions SessionStore, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, JWT: jwt, Logger: logger}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignUp creates a password account and starts its session.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, TokenPair{}, err
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := &entity.User{ID: uuid.NewString(), Email: email, Password: hash, Name: in.Name, Role: entity.RoleUser}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, TokenPair{}, ErrEmailTaken
		}
		return nil, TokenPair{}, err
	}
	s.Logger.WithField("user_id", u.ID).Info("user signed up")
	pair, err := s.IssueTokens(ctx, u)
	return u, pair, err
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.IssueTokens(ctx, u)
	return u, pair, err
}

// SignInExternal finds or creates the account of an identity verified by
// an external provider, then starts a session.
func (s *AuthService) SignInExternal(ctx context.Context, email, name string) (*entity.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, TokenPair{}, NewError(KindUnauthenticated, "identity provider returned no email")
	}
	u, err := s.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		u = &entity.User{ID: uuid.NewString(), Email: email, Name: name, Role: entity.RoleUser}
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, TokenPair{}, err
		}
		s.Logger.WithField("user_id", u.ID).Info("user signed up through external provider")
	case err != nil:
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	return u, pair, err
}

// IssueTokens starts a fresh session for u, replacing any previous one.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.sign(u.ID, sid)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate tokens failed")
		return TokenPair{}, err
	}
	if err := s.Sessions.Save(ctx, Session{UserID: u.ID, SessionID: sid, Email: u.Email}); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("save session failed")
		return TokenPair{}, err
	}
	return pair, nil
}

// Verify resolves an access token to the identity of a live session.
func (s *AuthService) Verify(ctx context.Context, accessToken string) (Identity, error) {
	if accessToken == "" {
		return Identity{}, ErrUnauthenticated
	}
	claims, err := s.JWT.ParseAccessToken(accessToken)
	if err != nil {
		return Identity{}, WrapError(KindUnauthenticated, "unauthorised", err)
	}
	if err := s.checkSession(ctx, claims.UserID, claims.SessionID); err != nil {
		return Identity{}, err
	}
	return Identity{UserID: claims.UserID, SessionID: claims.SessionID}, nil
}

// Refresh rotates the session id and both tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if err := s.checkSession(ctx, claims.UserID, claims.SessionID); err != nil {
		return TokenPair{}, "", err
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TokenPair{}, "", ErrInvalidCredentials
		}
		return TokenPair{}, "", err
	}
	pair, err := s.IssueTokens(ctx, u)
	return pair, u.ID, err
}

func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	return s.Sessions.Delete(ctx, userID)
}

func (s *AuthService) checkSession(ctx context.Context, userID, sid string) error {
	sess, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session lookup failed")
		return WrapError(KindUnauthenticated, "unauthorised", err)
	}
	if sess == nil || sess.SessionID != sid {
		return ErrUnauthenticated
	}
	return nil
}

func (s *AuthService) sign(userID, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}
