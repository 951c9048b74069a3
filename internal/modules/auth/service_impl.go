package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
	"github.com/shoply/shoply-backend/internal/modules/account"
	"github.com/shoply/shoply-backend/internal/password"
	"github.com/shoply/shoply-backend/internal/token"
)

type service struct {
	userRepo account.Repository
	tokens   *token.Issuer
	log      *zap.SugaredLogger
}

// NewService creates a new auth service.
func NewService(userRepo account.Repository, tokens *token.Issuer, log *zap.SugaredLogger) Service {
	return &service{userRepo: userRepo, tokens: tokens, log: log}
}

// signIn raises distinguishable failures; SignIn collapses them.
func (s *service) signIn(ctx context.Context, email, plainPassword string) (TokenPair, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return TokenPair{}, apperror.NotFound("no such account")
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return TokenPair{}, apperror.Authentication("invalid credentials")
	}

	access, err := s.tokens.IssueAccessToken(u.ID.String(), string(u.Role), u.Email)
	if err != nil {
		return TokenPair{}, apperror.Server("internal server error").WithCause(err)
	}
	refresh, err := s.tokens.IssueRefreshToken(u.ID.String(), string(u.Role), u.Email)
	if err != nil {
		return TokenPair{}, apperror.Server("internal server error").WithCause(err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) SignIn(ctx context.Context, email, plainPassword string) (TokenPair, error) {
	pair, err := s.signIn(ctx, email, plainPassword)
	if err != nil {
		// The client always sees the same generic failure; the specific
		// cause stays in the logs.
		s.log.Infow("sign-in failed", "email", email, "cause", err)
		return TokenPair{}, apperror.Authentication("authentication failed").WithCause(err)
	}
	return pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", apperror.Authentication("invalid refresh token")
	}

	// The subject must still map to an existing user before a new access
	// token is issued.
	u, err := s.userRepo.GetByID(ctx, claims.UserID())
	if err != nil {
		s.log.Errorw("refresh: lookup failed", "id", claims.UserID(), "error", err)
		return "", apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return "", apperror.Authentication("invalid refresh token")
	}

	access, err := s.tokens.IssueAccessToken(u.ID.String(), string(u.Role), u.Email)
	if err != nil {
		s.log.Errorw("refresh: issue failed", "id", claims.UserID(), "error", err)
		return "", apperror.Server("internal server error").WithCause(err)
	}
	return access, nil
}
