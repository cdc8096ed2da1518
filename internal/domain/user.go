package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Password length limits. The upper bound is bcrypt's practical limit.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
	MaxUserNameLength = 100
)

// User-specific validation errors
var (
	ErrUserIDEmpty         = errors.New("user ID cannot be empty")
	ErrUserNameEmpty       = errors.New("user name cannot be empty")
	ErrUserNameTooLong     = errors.New("user name exceeds maximum length")
	ErrEmailEmpty          = errors.New("email cannot be empty")
	ErrEmailInvalid        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrHashedPasswordEmpty = errors.New("hashed password cannot be empty")
)

// User represents a registered SkillPath user. The recommendation engine
// never consumes a User directly; it consumes the Profile snapshot assembled
// from the user's skills, goals, and preferences.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // plaintext, only set transiently during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email, and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored.
// Returns an error if validation fails.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if len(u.Name) > MaxUserNameLength {
		return ErrUserNameTooLong
	}

	if u.Email == "" {
		return ErrEmailEmpty
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrEmailInvalid
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from storage carry only the hash.
		return ErrHashedPasswordEmpty
	}

	return nil
}
