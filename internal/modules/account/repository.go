package account

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is reported by Create when the email uniqueness
// constraint is violated at write time.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository defines the interface for user record storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*User, error)
}
