package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Phin0508/eamts-sub003/internal/auth"
	"github.com/Phin0508/eamts-sub003/internal/config"
	"github.com/Phin0508/eamts-sub003/internal/events"
	"github.com/Phin0508/eamts-sub003/internal/repository"
	apperrors "github.com/Phin0508/eamts-sub003/pkg/util"
)

// AuthService handles login and logout against the session store.
type AuthService struct {
	users      repository.UserRepository
	sessions   auth.SessionStore
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies bundles collaborators for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore auth.SessionStore
	Dispatcher   events.Dispatcher
}

// LoginResult carries the issued session and cookie token.
type LoginResult struct {
	Session   *auth.Session
	Token     string
	ExpiresAt time.Time
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		tokens:     auth.NewTokenManager(cfg.CookieSecret, cfg.SessionTTL()),
		dispatcher: deps.Dispatcher,
	}
}

// TokenManager exposes the cookie signer for the session middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies credentials and opens a session. Unknown accounts, wrong
// passwords and suspended accounts all produce the same generic failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	// touch before opening the session: a failure here must not leave a
	// live session record behind
	if err := s.users.TouchLastLogin(ctx, user.UserID); err != nil {
		return nil, apperrors.MapError(err)
	}

	sess, err := s.sessions.Create(ctx, user.UserID, user.Role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	token, expiresAt, err := s.tokens.GenerateToken(sess.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserLoggedIn,
			ActorID:   user.UserID,
			Timestamp: time.Now(),
			Payload:   events.UserLoggedInPayload{Email: user.Email, Role: user.Role},
		})
	}

	return &LoginResult{Session: sess, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout discards the caller's session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
