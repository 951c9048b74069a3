// Package verification implements the email-ownership handshake: a random
// six-digit code is mailed to the address and must be echoed back before it
// expires. A code is single-use and superseded by any newer one.
package verification

import (
	"context"
	"time"
)

// Store persists the outstanding code per email. Writing a new code
// supersedes any previous one for the same address; codes disappear on
// expiry or consumption.
type Store interface {
	Put(ctx context.Context, email string, code int, ttl time.Duration) error
	Get(ctx context.Context, email string) (code int, ok bool, err error)
	Delete(ctx context.Context, email string) error
}

// Service defines the email-verification business logic.
type Service interface {
	// SendCode generates, mails, and stores a verification code for the
	// address. The returned code is for the route layer's logging only,
	// never for a response body.
	SendCode(ctx context.Context, email string) (int, error)

	// Confirm succeeds iff inputCode equals the currently outstanding
	// code for the email, consuming it on success.
	Confirm(ctx context.Context, inputCode int, email string) error
}
