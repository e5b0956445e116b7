package service_test

import (
	"context"
	"testing"

	"github.com/campfirehq/identity/internal/identity/service"
	"github.com/campfirehq/identity/internal/identity/store/drivers/sqlite"
	"github.com/campfirehq/identity/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256("service-test-secret-0123456789abcdef", "identity-test", 0, 0)
	require.NoError(t, err)

	return &service.AuthService{Store: st, Tokens: tokens}
}

func TestSignUp(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.Empty(t, user.Name)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "alice@example.com", "different456")
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestSignUpValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		fields   []string
	}{
		{"bad email", "not-an-email", "secret123", []string{"email"}},
		{"short password", "alice@example.com", "short", []string{"password"}},
		{"both invalid", "nope", "x", []string{"email", "password"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tc.email, tc.password)

			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, len(tc.fields))
			for i, field := range tc.fields {
				require.Equal(t, field, verr.Fields[i].Field)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	user, pair, err := svc.SignIn(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// The access token must verify and carry the signed-in identity.
	claims, err := svc.Tokens.(*jwtx.HS256).Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.SignIn(ctx, "alice@example.com", "wrongpass")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.SignIn(ctx, "ghost@example.com", "secret123")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestSignOutIsIdempotent(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.Equal(t, service.SignOutMessage, svc.SignOut(ctx))
	require.Equal(t, service.SignOutMessage, svc.SignOut(ctx))
}
