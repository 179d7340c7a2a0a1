package mocks

import (
	"context"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Custom behavior functions
	CreateUserFn    func(ctx context.Context, params service.CreateUserParams) (*domain.User, error)
	AuthenticateFn  func(ctx context.Context, email, password string) (string, error)
	ListUsersFn     func(ctx context.Context) ([]*domain.User, error)
	GetUserFn       func(ctx context.Context, userID domain.ID) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, callerID domain.ID, name, about string) (*domain.User, error)
	UpdateAvatarFn  func(ctx context.Context, callerID domain.ID, avatar string) (*domain.User, error)

	// Default return values
	User         *domain.User
	Users        []*domain.User
	Token        string
	DefaultError error
}

// CreateUser implements the UserService.CreateUser method
func (m *MockUserService) CreateUser(
	ctx context.Context,
	params service.CreateUserParams,
) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, params)
	}
	return m.User, m.DefaultError
}

// Authenticate implements the UserService.Authenticate method
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.Token, m.DefaultError
}

// ListUsers implements the UserService.ListUsers method
func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, m.DefaultError
}

// GetUser implements the UserService.GetUser method
func (m *MockUserService) GetUser(ctx context.Context, userID domain.ID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.DefaultError
}

// UpdateProfile implements the UserService.UpdateProfile method
func (m *MockUserService) UpdateProfile(
	ctx context.Context,
	callerID domain.ID,
	name, about string,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, callerID, name, about)
	}
	return m.User, m.DefaultError
}

// UpdateAvatar implements the UserService.UpdateAvatar method
func (m *MockUserService) UpdateAvatar(
	ctx context.Context,
	callerID domain.ID,
	avatar string,
) (*domain.User, error) {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, callerID, avatar)
	}
	return m.User, m.DefaultError
}
