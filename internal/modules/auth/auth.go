package auth

import "context"

// TokenPair is the result of a successful sign-in.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	// SignIn verifies credentials and issues an access/refresh token pair.
	// Every failure surfaces to the caller as a generic authentication
	// error; the specific cause is only logged.
	SignIn(ctx context.Context, email, plainPassword string) (TokenPair, error)

	// Refresh verifies a refresh token, re-resolves the user it names, and
	// issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
