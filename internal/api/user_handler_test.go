package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placecards/placecards-api/internal/api/shared"
	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/mocks"
	"github.com/placecards/placecards-api/internal/store"
)

// authedRequest builds a request carrying an authenticated user ID, as the
// auth middleware would.
func authedRequest(method, path string, body []byte, userID domain.ID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req.WithContext(shared.WithUserID(req.Context(), userID))
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func testUser(id domain.ID) *domain.User {
	return &domain.User{
		ID:     id,
		Name:   "Marie Tharp",
		About:  "Cartographer",
		Avatar: domain.DefaultUserAvatar,
		Email:  "diver@example.com",
	}
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	userID := domain.NewID()
	userService := &mocks.MockUserService{Users: []*domain.User{testUser(userID)}}
	handler := NewUserHandler(userService, nil)

	req := authedRequest(http.MethodGet, "/users", nil, userID)
	w := httptest.NewRecorder()
	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, userID, resp[0].ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's profile", func(t *testing.T) {
		t.Parallel()

		userID := domain.NewID()
		userService := &mocks.MockUserService{
			GetUserFn: func(ctx context.Context, id domain.ID) (*domain.User, error) {
				require.Equal(t, userID, id)
				return testUser(id), nil
			},
		}
		handler := NewUserHandler(userService, nil)

		req := authedRequest(http.MethodGet, "/users/me", nil, userID)
		w := httptest.NewRecorder()
		handler.GetMe(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "diver@example.com", resp.Email)
	})

	t.Run("missing identity yields 401", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		w := httptest.NewRecorder()
		handler.GetMe(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("vanished caller record yields 404", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{DefaultError: store.ErrUserNotFound}
		handler := NewUserHandler(userService, nil)

		req := authedRequest(http.MethodGet, "/users/me", nil, domain.NewID())
		w := httptest.NewRecorder()
		handler.GetMe(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	t.Run("valid identifier", func(t *testing.T) {
		t.Parallel()

		targetID := domain.NewID()
		userService := &mocks.MockUserService{User: testUser(targetID)}
		handler := NewUserHandler(userService, nil)

		req := authedRequest(http.MethodGet, "/users/"+string(targetID), nil, domain.NewID())
		req = withURLParam(req, "userId", string(targetID))
		w := httptest.NewRecorder()
		handler.GetUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed identifier yields 400 not 404", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, nil)

		req := authedRequest(http.MethodGet, "/users/nope", nil, domain.NewID())
		req = withURLParam(req, "userId", "nope")
		w := httptest.NewRecorder()
		handler.GetUser(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown identifier yields 404", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{DefaultError: store.ErrUserNotFound}
		handler := NewUserHandler(userService, nil)

		targetID := domain.NewID()
		req := authedRequest(http.MethodGet, "/users/"+string(targetID), nil, domain.NewID())
		req = withURLParam(req, "userId", string(targetID))
		w := httptest.NewRecorder()
		handler.GetUser(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("updates only the caller's record", func(t *testing.T) {
		t.Parallel()

		callerID := domain.NewID()
		userService := &mocks.MockUserService{
			UpdateProfileFn: func(ctx context.Context, id domain.ID, name, about string) (*domain.User, error) {
				require.Equal(t, callerID, id)
				user := testUser(id)
				user.Name = name
				user.About = about
				return user, nil
			},
		}
		handler := NewUserHandler(userService, nil)

		body, _ := json.Marshal(map[string]string{"name": "Sylvia Earle", "about": "Oceanographer"})
		req := authedRequest(http.MethodPatch, "/users/me", body, callerID)
		w := httptest.NewRecorder()
		handler.UpdateProfile(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Sylvia Earle", resp.Name)
	})

	t.Run("field bounds enforced", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, nil)

		body, _ := json.Marshal(map[string]string{"name": "x", "about": "Oceanographer"})
		req := authedRequest(http.MethodPatch, "/users/me", body, domain.NewID())
		w := httptest.NewRecorder()
		handler.UpdateProfile(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateAvatar(t *testing.T) {
	t.Parallel()

	t.Run("valid avatar URL", func(t *testing.T) {
		t.Parallel()

		callerID := domain.NewID()
		userService := &mocks.MockUserService{
			UpdateAvatarFn: func(ctx context.Context, id domain.ID, avatar string) (*domain.User, error) {
				user := testUser(id)
				user.Avatar = avatar
				return user, nil
			},
		}
		handler := NewUserHandler(userService, nil)

		body, _ := json.Marshal(map[string]string{"avatar": "https://example.com/pic.png"})
		req := authedRequest(http.MethodPatch, "/users/me/avatar", body, callerID)
		w := httptest.NewRecorder()
		handler.UpdateAvatar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejected avatar URL", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mocks.MockUserService{}, nil)

		body, _ := json.Marshal(map[string]string{"avatar": "ftp://example.com/pic.png"})
		req := authedRequest(http.MethodPatch, "/users/me/avatar", body, domain.NewID())
		w := httptest.NewRecorder()
		handler.UpdateAvatar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
