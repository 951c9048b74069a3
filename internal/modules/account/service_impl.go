package account

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
	"github.com/shoply/shoply-backend/internal/password"
)

type service struct {
	repo       Repository
	bcryptCost int
	log        *zap.SugaredLogger
}

// NewService creates the account service. bcryptCost is the single hashing
// cost applied at every hashing site.
func NewService(repo Repository, bcryptCost int, log *zap.SugaredLogger) Service {
	return &service{repo: repo, bcryptCost: bcryptCost, log: log}
}

// validateRegistration checks the sign-up fields in a fixed order and
// reports the earliest violated one.
func validateRegistration(req RegisterRequest) error {
	switch {
	case !IsValidName(req.Name):
		return apperror.Input("invalid name")
	case !IsValidPhoneNumber(req.PhoneNumber):
		return apperror.Input("invalid phone number")
	case !IsValidEmail(req.Email):
		return apperror.Input("invalid email")
	case !IsValidPassword(req.Password):
		return apperror.Input("invalid password")
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.log.Errorw("register: lookup failed", "email", req.Email, "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hashed, err := password.Hash(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Errorw("register: hash failed", "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}

	u := &User{
		ID:            uuid.New(),
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		PasswordHash:  hashed,
		Address:       req.Address,
		AddressDetail: req.AddressDetail,
		Role:          RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// The store's uniqueness constraint is authoritative; the
		// pre-check above only loses a race.
		if err == ErrDuplicateEmail {
			return nil, apperror.Conflict("email already registered")
		}
		s.log.Errorw("register: insert failed", "email", req.Email, "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}
	return u, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("get profile failed", "id", id, "error", err)
		return Profile{}, apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return Profile{}, apperror.NotFound("no such account")
	}
	return profileOf(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, currentEmail string, req UpdateProfileRequest) (Profile, error) {
	if req.Email != currentEmail {
		return Profile{}, apperror.BusinessRule("email cannot be changed")
	}

	u, err := s.repo.GetByEmail(ctx, currentEmail)
	if err != nil {
		s.log.Errorw("update profile: lookup failed", "email", currentEmail, "error", err)
		return Profile{}, apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return Profile{}, apperror.NotFound("no such account")
	}

	// Name and phone carry over unchanged; only address fields and the
	// optional password are caller-settable here.
	u.Address = req.Address
	u.AddressDetail = req.AddressDetail
	u.Role = RoleUser

	if req.Password != "" {
		if !IsValidPassword(req.Password) {
			return Profile{}, apperror.Input("invalid password")
		}
		hashed, err := password.Hash(req.Password, s.bcryptCost)
		if err != nil {
			s.log.Errorw("update profile: hash failed", "error", err)
			return Profile{}, apperror.Server("internal server error").WithCause(err)
		}
		u.PasswordHash = hashed
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Errorw("update profile: write failed", "email", currentEmail, "error", err)
		return Profile{}, apperror.Server("internal server error").WithCause(err)
	}
	return profileOf(u), nil
}

func (s *service) ListProfiles(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorw("list profiles failed", "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}
	if len(users) == 0 {
		return nil, apperror.NotFound("no accounts")
	}
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, profileOf(u))
	}
	return profiles, nil
}

func (s *service) DeleteProfile(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("delete profile: lookup failed", "id", id, "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return nil, apperror.NotFound("no such account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Errorw("delete profile: delete failed", "id", id, "error", err)
		return nil, apperror.Server("internal server error").WithCause(err)
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if !IsValidPassword(req.NewPassword) {
		return apperror.Input("invalid password")
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return apperror.Input("password confirmation does not match")
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.log.Errorw("change password: lookup failed", "email", req.Email, "error", err)
		return apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return apperror.NotFound("no such account")
	}

	hashed, err := password.Hash(req.NewPassword, s.bcryptCost)
	if err != nil {
		s.log.Errorw("change password: hash failed", "error", err)
		return apperror.Server("internal server error").WithCause(err)
	}
	u.PasswordHash = hashed

	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Errorw("change password: write failed", "email", req.Email, "error", err)
		return apperror.Server("internal server error").WithCause(err)
	}
	return nil
}

func (s *service) SetProfileImage(ctx context.Context, userID, storedPath string) (string, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.log.Errorw("set profile image: lookup failed", "id", userID, "error", err)
		return "", apperror.Server("internal server error").WithCause(err)
	}
	if u == nil {
		return "", apperror.NotFound("no such account")
	}

	u.ProfileImagePath = storedPath
	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Errorw("set profile image: write failed", "id", userID, "error", err)
		return "", apperror.Server("internal server error").WithCause(err)
	}
	return profileOf(u).ProfileImage, nil
}
