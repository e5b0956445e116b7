package jwtx_test

import (
	"testing"
	"time"

	"github.com/campfirehq/identity/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "unit-test-secret-0123456789abcdef"
	testIssuer = "identity-test"
)

func newHS256(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, testIssuer, 0, 0)
	require.NoError(t, err)
	return h
}

func TestNewHS256RejectsEmptySecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewHS256("", testIssuer, 0, 0)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	token, err := h.IssueAccessToken("user-123", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, testIssuer, claims.Issuer)
	require.NotEmpty(t, claims.ID, "jti should be set")
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	access, err := h.IssueAccessToken("user-123", "a@b.com")
	require.NoError(t, err)
	refresh, err := h.IssueRefreshToken("user-123", "a@b.com")
	require.NoError(t, err)

	ac, err := h.Verify(access)
	require.NoError(t, err)
	rc, err := h.Verify(refresh)
	require.NoError(t, err)

	gap := rc.ExpiresAt.Sub(ac.ExpiresAt.Time)
	require.Greater(t, gap, 6*24*time.Hour, "refresh expiry should be far beyond access expiry")
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	other, err := jwtx.NewHS256("a-completely-different-secret-value", testIssuer, 0, 0)
	require.NoError(t, err)

	token, err := other.IssueAccessToken("user-123", "a@b.com")
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	for _, in := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := h.Verify(in)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "input %q", in)
	}
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	claims := jwtx.NewClaims("user-123", "a@b.com", testIssuer, time.Hour, time.Now().UTC())
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	other, err := jwtx.NewHS256(testSecret, "someone-else", 0, 0)
	require.NoError(t, err)

	token, err := other.IssueAccessToken("user-123", "a@b.com")
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	t.Parallel()
	h := newHS256(t)

	sign := func(iat time.Time, ttl time.Duration) string {
		claims := jwtx.NewClaims("user-123", "a@b.com", testIssuer, ttl, iat)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}

	t.Run("valid before expiry", func(t *testing.T) {
		_, err := h.Verify(sign(time.Now().UTC(), time.Minute))
		require.NoError(t, err)
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		_, err := h.Verify(sign(time.Now().UTC().Add(-2*time.Minute), time.Minute))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("the expiry instant itself is expired", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		claims := jwtx.NewClaims("user-123", "a@b.com", testIssuer, 0, now)
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})
}

func TestClaimsValidateExpiry(t *testing.T) {
	t.Parallel()

	t.Run("missing exp is expired", func(t *testing.T) {
		c := jwtx.Claims{}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("nbf in the future is rejected", func(t *testing.T) {
		now := time.Now().UTC()
		c := jwtx.NewClaims("s", "e", "i", time.Hour, now.Add(10*time.Minute))
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	})
}
