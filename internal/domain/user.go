package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"
)

// User-specific validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNameLength          = errors.New("name must be between 2 and 30 characters")
	ErrAboutLength         = errors.New("about must be between 2 and 30 characters")
	ErrInvalidAvatarURL    = fmt.Errorf("avatar must be a valid URL: %w", ErrInvalidURL)
)

// Profile defaults applied at signup when the optional fields are omitted.
// They mirror the public demo data the frontend ships with.
const (
	DefaultUserName   = "Jacques Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// Bounds shared by the name and about display fields.
const (
	displayFieldMin = 2
	displayFieldMax = 30
)

// User represents a registered user of the placecards service.
type User struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Avatar         string    `json:"avatar"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User for signup. Empty name, about, and avatar fall back
// to the profile defaults. The caller is responsible for hashing the
// password; NewUser never sees the plaintext.
func NewUser(name, about, avatar, email, hashedPassword string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	now := time.Now().UTC()
	user := &User{
		ID:             NewID(),
		Name:           name,
		About:          about,
		Avatar:         avatar,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return ErrEmptyUserID
	}

	if !displayFieldInBounds(u.Name) {
		return ErrNameLength
	}

	if !displayFieldInBounds(u.About) {
		return ErrAboutLength
	}

	if !ValidURL(u.Avatar) {
		return ErrInvalidAvatarURL
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// UpdateProfile replaces the name and about fields, validating the result.
func (u *User) UpdateProfile(name, about string) error {
	if !displayFieldInBounds(name) {
		return ErrNameLength
	}
	if !displayFieldInBounds(about) {
		return ErrAboutLength
	}

	u.Name = name
	u.About = about
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateAvatar replaces the avatar URL, validating the result.
func (u *User) UpdateAvatar(avatar string) error {
	if !ValidURL(avatar) {
		return ErrInvalidAvatarURL
	}

	u.Avatar = avatar
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// displayFieldInBounds checks the [2,30] rune-length bound shared by the
// name and about fields.
func displayFieldInBounds(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= displayFieldMin && n <= displayFieldMax
}
