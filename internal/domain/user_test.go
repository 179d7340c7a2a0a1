package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	validEmail := "test@example.com"
	validHash := "$2a$10$somebcrypthashvalue"

	user, err := NewUser("Marie Curie", "Physicist", "https://example.com/avatar.png", validEmail, validHash)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID.IsZero() {
		t.Error("Expected non-zero ID")
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.HashedPassword != validHash {
		t.Errorf("Expected hashed password %s, got %s", validHash, user.HashedPassword)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid email
	_, err = NewUser("", "", "", "", validHash)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("", "", "", "invalidemail", validHash)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test missing hash
	_, err = NewUser("", "", "", validEmail, "")
	if err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestNewUserDefaults(t *testing.T) {
	user, err := NewUser("", "", "", "test@example.com", "hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != DefaultUserName {
		t.Errorf("Expected default name %q, got %q", DefaultUserName, user.Name)
	}
	if user.About != DefaultUserAbout {
		t.Errorf("Expected default about %q, got %q", DefaultUserAbout, user.About)
	}
	if user.Avatar != DefaultUserAvatar {
		t.Errorf("Expected default avatar %q, got %q", DefaultUserAvatar, user.Avatar)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             NewID(),
		Name:           "Marie Curie",
		About:          "Physicist",
		Avatar:         "https://example.com/avatar.png",
		Email:          "test@example.com",
		HashedPassword: "hash",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = ""
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test name bounds
	invalidUser = validUser
	invalidUser.Name = "x"
	if err := invalidUser.Validate(); err != ErrNameLength {
		t.Errorf("Expected error %v, got %v", ErrNameLength, err)
	}

	invalidUser.Name = strings.Repeat("x", 31)
	if err := invalidUser.Validate(); err != ErrNameLength {
		t.Errorf("Expected error %v, got %v", ErrNameLength, err)
	}

	// Test about bounds
	invalidUser = validUser
	invalidUser.About = "y"
	if err := invalidUser.Validate(); err != ErrAboutLength {
		t.Errorf("Expected error %v, got %v", ErrAboutLength, err)
	}

	// Test avatar URL
	invalidUser = validUser
	invalidUser.Avatar = "not-a-url"
	if err := invalidUser.Validate(); err != ErrInvalidAvatarURL {
		t.Errorf("Expected error %v, got %v", ErrInvalidAvatarURL, err)
	}
	if !errors.Is(ErrInvalidAvatarURL, ErrInvalidURL) {
		t.Error("Expected avatar error to classify as an invalid URL")
	}

	// Test invalid email
	invalidUser = validUser
	invalidUser.Email = "invalidemail"
	if err := invalidUser.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	user, err := NewUser("", "", "", "test@example.com", "hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := user.UpdateProfile("Ada Lovelace", "Mathematician"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Name != "Ada Lovelace" || user.About != "Mathematician" {
		t.Errorf("Profile not updated: %q / %q", user.Name, user.About)
	}

	// Invalid values leave the user unchanged.
	if err := user.UpdateProfile("z", "Mathematician"); err != ErrNameLength {
		t.Errorf("Expected error %v, got %v", ErrNameLength, err)
	}
	if user.Name != "Ada Lovelace" {
		t.Errorf("Expected name unchanged after failed update, got %q", user.Name)
	}
}

func TestUserUpdateAvatar(t *testing.T) {
	user, err := NewUser("", "", "", "test@example.com", "hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := user.UpdateAvatar("http://www.example.org/pic.jpg"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Avatar != "http://www.example.org/pic.jpg" {
		t.Errorf("Avatar not updated, got %q", user.Avatar)
	}

	if err := user.UpdateAvatar("ftp://example.org/pic.jpg"); err != ErrInvalidAvatarURL {
		t.Errorf("Expected error %v, got %v", ErrInvalidAvatarURL, err)
	}
}
