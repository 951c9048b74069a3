// Package token issues and verifies the service's signed access and refresh
// tokens.
package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, expired, malformed, or the wrong token type.
var ErrInvalidToken = errors.New("invalid token")

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Claims is the minimal claim set carried by both token kinds.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string { return c.Subject }

// Issuer signs and verifies tokens with a process-wide HMAC secret loaded at
// startup.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer builds an Issuer. The secret is never rotated at runtime.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssueAccessToken signs a short-lived token for the given identity.
func (i *Issuer) IssueAccessToken(userID, role, email string) (string, error) {
	return i.sign(userID, role, email, typeAccess, i.accessTTL)
}

// IssueRefreshToken signs a longer-lived token used solely to obtain a new
// access token.
func (i *Issuer) IssueRefreshToken(userID, role, email string) (string, error) {
	return i.sign(userID, role, email, typeRefresh, i.refreshTTL)
}

func (i *Issuer) sign(userID, role, email, typ string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		Role:  role,
		Email: email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// VerifyAccess validates signature, expiration, and token type.
func (i *Issuer) VerifyAccess(tokenStr string) (*Claims, error) {
	return i.verify(tokenStr, typeAccess)
}

// VerifyRefresh validates signature, expiration, and token type.
func (i *Issuer) VerifyRefresh(tokenStr string) (*Claims, error) {
	return i.verify(tokenStr, typeRefresh)
}

func (i *Issuer) verify(tokenStr, typ string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Type != typ || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
