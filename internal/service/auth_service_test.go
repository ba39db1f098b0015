package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Phin0508/eamts-sub003/internal/auth"
	"github.com/Phin0508/eamts-sub003/internal/config"
	"github.com/Phin0508/eamts-sub003/internal/domain"
	"github.com/Phin0508/eamts-sub003/internal/events"
	apperrors "github.com/Phin0508/eamts-sub003/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeSessionStore, *captureDispatcher) {
	t.Helper()
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{
		users: []domain.User{
			{UserID: 1, Email: "maya@corp.test", PasswordHash: hash, Role: domain.RoleManager, Department: "IT", IsActive: true},
			{UserID: 2, Email: "gone@corp.test", PasswordHash: hash, Role: domain.RoleEmployee, Department: "IT", IsActive: false},
		},
	}
	sessions := newFakeSessionStore()
	dispatcher := &captureDispatcher{}
	svc := NewAuthService(config.AuthConfig{CookieSecret: "test-secret", SessionTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		AuthDependencies{UserRepo: users, SessionStore: sessions, Dispatcher: dispatcher})
	return svc, users, sessions, dispatcher
}

func TestLoginSuccess(t *testing.T) {
	svc, users, sessions, dispatcher := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "maya@corp.test", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Session.UserID)
	assert.Equal(t, domain.RoleManager, result.Session.Role)
	assert.Len(t, sessions.sessions, 1)
	assert.Equal(t, []int64{1}, users.touched)

	// cookie token resolves back to the stored session id
	sessionID, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, sessionID)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventUserLoggedIn, dispatcher.published[0].Type)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)

	_, errUnknown := svc.Login(context.Background(), "nobody@corp.test", "s3cret")
	_, errWrongPass := svc.Login(context.Background(), "maya@corp.test", "wrong")
	_, errInactive := svc.Login(context.Background(), "gone@corp.test", "s3cret")

	for _, err := range []error{errUnknown, errWrongPass, errInactive} {
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
		assert.Equal(t, "invalid credentials", domainErr.Message)
	}
	assert.Empty(t, sessions.sessions)
}

func TestLoginTouchFailureLeavesNoSession(t *testing.T) {
	svc, users, sessions, dispatcher := newAuthFixture(t)
	users.touchErr = errors.New("users table unavailable")

	_, err := svc.Login(context.Background(), "maya@corp.test", "s3cret")
	require.Error(t, err)

	// the failed login must not leave a live session behind
	assert.Empty(t, sessions.sessions)
	assert.Empty(t, dispatcher.published)
}

func TestLogout(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "maya@corp.test", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.ID))
	assert.Empty(t, sessions.sessions)

	// logging out without a session is a no-op
	require.NoError(t, svc.Logout(context.Background(), ""))
}
