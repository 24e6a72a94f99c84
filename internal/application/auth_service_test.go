package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

func newAuth(users *memUsers) (*AuthService, *memSessions) {
	sessions := newMemSessions()
	jwt := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)
	return NewAuthService(users, sessions, jwt, testLogger()), sessions
}

func TestAuth_SignUpAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newAuth(newMemUsers())

	u, pair, err := svc.SignUp(ctx, SignUpInput{Email: " Ann@Example.com ", Password: "password1", Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "password1", u.Password)
	require.Contains(t, sessions.rows, u.ID)

	id, err := svc.Verify(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, sessions.rows[u.ID].SessionID, id.SessionID)
}

func TestAuth_SignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuth(newMemUsers(entity.User{ID: "u1", Email: "ann@example.com"}))

	_, _, err := svc.SignUp(context.Background(), SignUpInput{Email: "ann@example.com", Password: "password1"})
	require.Error(t, err)
	assert.Equal(t, KindUnprocessable, KindOf(err))
}

func TestAuth_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := helpers.HashPassword("password1")
	require.NoError(t, err)
	svc, _ := newAuth(newMemUsers(entity.User{ID: "u1", Email: "ann@example.com", Password: hash}))

	_, _, err = svc.SignIn(ctx, "ann@example.com", "wrong-password")
	assert.Equal(t, KindUnauthenticated, KindOf(err))

	_, _, err = svc.SignIn(ctx, "nobody@example.com", "password1")
	assert.Equal(t, KindUnauthenticated, KindOf(err))

	u, pair, err := svc.SignIn(ctx, "ann@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAuth_RefreshRotatesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuth(newMemUsers())
	u, first, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)

	second, uid, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	_, err = svc.Verify(ctx, first.AccessToken)
	assert.Equal(t, KindUnauthenticated, KindOf(err), "old sid must be rejected")

	_, err = svc.Verify(ctx, second.AccessToken)
	assert.NoError(t, err)

	_, _, err = svc.Refresh(ctx, first.RefreshToken)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestAuth_SignOutEndsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuth(newMemUsers())
	u, pair, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, u.ID))
	_, err = svc.Verify(ctx, pair.AccessToken)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestAuth_VerifyRejectsGarbage(t *testing.T) {
	svc, _ := newAuth(newMemUsers())
	_, err := svc.Verify(context.Background(), "")
	assert.Equal(t, KindUnauthenticated, KindOf(err))
	_, err = svc.Verify(context.Background(), "not-a-jwt")
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestAuth_SignInExternalCreatesOnce(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc, _ := newAuth(users)

	first, _, err := svc.SignInExternal(ctx, "G@Example.com", "Gee")
	require.NoError(t, err)
	second, _, err := svc.SignInExternal(ctx, "g@example.com", "Gee")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, users.rows, 1)
	assert.Empty(t, users.rows[first.ID].Password)
}
