package account

import "context"

// Service defines the account-management business logic.
type Service interface {
	// Register creates a new user. The stored role is always RoleUser.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// GetProfile returns the client projection of one user.
	GetProfile(ctx context.Context, id string) (Profile, error)

	// UpdateProfile mutates the profile of the authenticated identity.
	// currentEmail is the identity the caller proved ownership of; the
	// request email must match it, since email is immutable.
	UpdateProfile(ctx context.Context, currentEmail string, req UpdateProfileRequest) (Profile, error)

	// ListProfiles returns every user's projection. Privileged.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// DeleteProfile removes one user and returns the pre-deletion record.
	DeleteProfile(ctx context.Context, id string) (*User, error)

	// ChangePassword replaces a user's password after format and
	// confirmation checks.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// SetProfileImage persists the stored image path on the user and
	// returns the displayable URL.
	SetProfileImage(ctx context.Context, userID, storedPath string) (string, error)
}
