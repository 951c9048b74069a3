package account

import (
	"time"

	"github.com/google/uuid"
)

// Role marks the privilege level of a user. It is assigned by the service
// and never settable from request input.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an identity record. Email is unique and immutable after creation.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Address          string    `json:"address,omitempty"`
	AddressDetail    string    `json:"address_detail,omitempty"`
	Role             Role      `json:"role"`
	ProfileImagePath string    `json:"profile_image_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Profile is the projection of a User returned to clients.
type Profile struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Address       string `json:"address,omitempty"`
	AddressDetail string `json:"address_detail,omitempty"`
	Role          Role   `json:"role"`
	ProfileImage  string `json:"profile_image,omitempty"`
}

// profileOf builds the client projection, resolving the stored image path to
// a displayable URL under the public asset prefix.
func profileOf(u *User) Profile {
	p := Profile{
		Name:          u.Name,
		PhoneNumber:   u.PhoneNumber,
		Email:         u.Email,
		Address:       u.Address,
		AddressDetail: u.AddressDetail,
		Role:          u.Role,
	}
	if u.ProfileImagePath != "" {
		p.ProfileImage = "/assets/" + u.ProfileImagePath
	}
	return p
}

// RegisterRequest carries the sign-up input.
type RegisterRequest struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail"`
}

// UpdateProfileRequest carries the profile mutation input. Email must match
// the authenticated identity; name and phone are not caller-settable here.
type UpdateProfileRequest struct {
	Email         string `json:"email"`
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail"`
	Password      string `json:"password,omitempty"`
}

// ChangePasswordRequest carries the password-change input.
type ChangePasswordRequest struct {
	Email              string `json:"email"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}
