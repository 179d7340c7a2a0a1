package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/service/auth"
	"github.com/placecards/placecards-api/internal/store"
)

// CreateUserParams carries the signup input. Name, About, and Avatar are
// optional; the domain layer substitutes the profile defaults.
type CreateUserParams struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// UserService provides user-related operations: signup, login, profile
// reads and self-profile updates.
type UserService interface {
	// CreateUser registers a new user, hashing the password before storage.
	// Returns store.ErrEmailExists if the email is already taken.
	CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error)

	// Authenticate verifies the credentials and issues an identity token.
	// Returns auth.ErrInvalidCredentials for an unknown email or a wrong
	// password; callers cannot tell which.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, userID domain.ID) (*domain.User, error)

	// UpdateProfile replaces the caller's name and about fields.
	// Returns store.ErrUserNotFound if the caller's record no longer exists.
	UpdateProfile(ctx context.Context, callerID domain.ID, name, about string) (*domain.User, error)

	// UpdateAvatar replaces the caller's avatar URL.
	// Returns store.ErrUserNotFound if the caller's record no longer exists.
	UpdateAvatar(ctx context.Context, callerID domain.ID, avatar string) (*domain.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With(slog.String("component", "user_service")),
	}
}

// CreateUser implements UserService.CreateUser
func (s *userServiceImpl) CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error) {
	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(params.Name, params.About, params.Avatar, params.Email, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email",
				"email", params.Email)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"email", params.Email)
		}
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.ID)

	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same error as a wrong password so responses cannot leak
			// whether the email is registered.
			return "", auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user authenticated", "user_id", user.ID)

	return token, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID domain.ID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile implements UserService.UpdateProfile
func (s *userServiceImpl) UpdateProfile(
	ctx context.Context,
	callerID domain.ID,
	name, about string,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(name, about); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", callerID)
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", callerID)

	return user, nil
}

// UpdateAvatar implements UserService.UpdateAvatar
func (s *userServiceImpl) UpdateAvatar(
	ctx context.Context,
	callerID domain.ID,
	avatar string,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateAvatar(avatar); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update avatar", "error", err, "user_id", callerID)
		return nil, err
	}

	s.logger.Info("avatar updated", "user_id", callerID)

	return user, nil
}
