package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
	"github.com/shoply/shoply-backend/internal/mail"
)

const (
	codeMin = 100000
	codeMax = 999999

	mailSubject = "Shoply email verification"
)

type service struct {
	store  Store
	mailer mail.Mailer
	ttl    time.Duration
	log    *zap.SugaredLogger
}

// NewService creates the verification service. ttl bounds how long a sent
// code stays confirmable.
func NewService(store Store, mailer mail.Mailer, ttl time.Duration, log *zap.SugaredLogger) Service {
	return &service{store: store, mailer: mailer, ttl: ttl, log: log}
}

// randomCode draws a uniform integer in [codeMin, codeMax].
func randomCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return 0, fmt.Errorf("generate verification code: %w", err)
	}
	return codeMin + int(n.Int64()), nil
}

func (s *service) SendCode(ctx context.Context, email string) (int, error) {
	code, err := randomCode()
	if err != nil {
		s.log.Errorw("send code: generation failed", "error", err)
		return 0, apperror.Server("verification error").WithCause(err)
	}

	body := fmt.Sprintf("Your Shoply verification code is %d.\nIt expires in %d minutes.", code, int(s.ttl.Minutes()))
	if err := s.mailer.Send(ctx, email, mailSubject, body); err != nil {
		s.log.Errorw("send code: mail delivery failed", "email", email, "error", err)
		return 0, apperror.Server("verification error").WithCause(err)
	}

	if err := s.store.Put(ctx, email, code, s.ttl); err != nil {
		s.log.Errorw("send code: store failed", "email", email, "error", err)
		return 0, apperror.Server("verification error").WithCause(err)
	}
	return code, nil
}

func (s *service) Confirm(ctx context.Context, inputCode int, email string) error {
	stored, ok, err := s.store.Get(ctx, email)
	if err != nil {
		s.log.Errorw("confirm: store failed", "email", email, "error", err)
		return apperror.Server("verification error").WithCause(err)
	}
	if !ok || stored != inputCode {
		return apperror.Input("verification failed")
	}

	// Consume on success only; a wrong guess leaves the code outstanding
	// until it expires.
	if err := s.store.Delete(ctx, email); err != nil {
		s.log.Errorw("confirm: consume failed", "email", email, "error", err)
		return apperror.Server("verification error").WithCause(err)
	}
	return nil
}
