package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrEmptySecret = errors.New("jwtx: signing secret must not be empty")
)

// RecommendedSecretBytes is the minimum secret size that matches the HS256
// output strength. Shorter secrets verify fine but weaken the scheme.
const RecommendedSecretBytes = 32

// Issuer mints signed tokens from a claim set.
type Issuer interface {
	IssueAccessToken(subject, email string) (string, error)
	IssueRefreshToken(subject, email string) (string, error)
}

// Verifier validates a compact token and returns its claims when legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single symmetric secret. It is
// stateless: nothing is recorded per token, so an issued token stays valid
// until its embedded expiry.
type HS256 struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewHS256 builds a combined issuer/verifier. Zero TTLs fall back to the
// package defaults.
func NewHS256(secret, issuer string, accessTTL, refreshTTL time.Duration) (*HS256, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &HS256{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTTL reports the configured access-token lifetime.
func (h *HS256) AccessTTL() time.Duration { return h.accessTTL }

// IssueAccessToken mints a short-lived token carrying {sub, email}.
func (h *HS256) IssueAccessToken(subject, email string) (string, error) {
	return h.sign(NewClaims(subject, email, h.issuer, h.accessTTL, time.Now().UTC()))
}

// IssueRefreshToken mints the long-lived variant from the same claim set.
func (h *HS256) IssueRefreshToken(subject, email string) (string, error) {
	return h.sign(NewClaims(subject, email, h.issuer, h.refreshTTL, time.Now().UTC()))
}

func (h *HS256) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature against the shared secret and validates the
// claim window. Only HS256 is accepted; tokens claiming any other algorithm
// are rejected before signature verification.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
