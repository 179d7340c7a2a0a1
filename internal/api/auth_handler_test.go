package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/mocks"
	"github.com/placecards/placecards-api/internal/service"
	"github.com/placecards/placecards-api/internal/service/auth"
	"github.com/placecards/placecards-api/internal/store"
)

func cookieAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "0123456789abcdef0123456789abcdef",
		TokenCarrier: config.CarrierCookie,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestSignup(t *testing.T) {
	t.Parallel()

	newHandler := func(userService service.UserService) *AuthHandler {
		return NewAuthHandler(userService, cookieAuthConfig(), nil)
	}

	t.Run("valid signup returns profile without hash", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{
			CreateUserFn: func(ctx context.Context, params service.CreateUserParams) (*domain.User, error) {
				user, err := domain.NewUser(params.Name, params.About, params.Avatar, params.Email, "hash-value")
				require.NoError(t, err)
				return user, nil
			},
		}
		handler := newHandler(userService)

		w := postJSON(t, handler.Signup, "/signup", map[string]interface{}{
			"email":    "diver@example.com",
			"password": "secret-password",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "diver@example.com", resp["email"])
		assert.Equal(t, domain.DefaultUserName, resp["name"])
		assert.NotContains(t, resp, "password")
		assert.NotContains(t, w.Body.String(), "hash-value")
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		handler := newHandler(&mocks.MockUserService{})

		tests := []struct {
			name    string
			payload map[string]interface{}
		}{
			{
				name:    "missing email",
				payload: map[string]interface{}{"password": "secret-password"},
			},
			{
				name:    "missing password",
				payload: map[string]interface{}{"email": "diver@example.com"},
			},
			{
				name: "invalid email",
				payload: map[string]interface{}{
					"email":    "not-an-email",
					"password": "secret-password",
				},
			},
			{
				name: "avatar not a url",
				payload: map[string]interface{}{
					"email":    "diver@example.com",
					"password": "secret-password",
					"avatar":   "not-a-url",
				},
			},
			{
				name: "name too short",
				payload: map[string]interface{}{
					"email":    "diver@example.com",
					"password": "secret-password",
					"name":     "x",
				},
			},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				w := postJSON(t, handler.Signup, "/signup", tc.payload)
				assert.Equal(t, http.StatusBadRequest, w.Code)

				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp, "message")
			})
		}
	})

	t.Run("duplicate email yields conflict", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{DefaultError: store.ErrEmailExists}
		handler := newHandler(userService)

		w := postJSON(t, handler.Signup, "/signup", map[string]interface{}{
			"email":    "diver@example.com",
			"password": "secret-password",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		handler := newHandler(&mocks.MockUserService{})

		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.Signup(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSignin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials set the cookie and return the token", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{Token: "issued-token"}
		handler := NewAuthHandler(userService, cookieAuthConfig(), nil)

		w := postJSON(t, handler.Signin, "/signin", map[string]interface{}{
			"email":    "diver@example.com",
			"password": "secret-password",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "issued-token", resp.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "jwt", cookies[0].Name)
		assert.Equal(t, "issued-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Positive(t, cookies[0].MaxAge)
	})

	t.Run("bearer carrier sets no cookie", func(t *testing.T) {
		t.Parallel()

		cfg := cookieAuthConfig()
		cfg.TokenCarrier = config.CarrierBearer
		handler := NewAuthHandler(&mocks.MockUserService{Token: "issued-token"}, cfg, nil)

		w := postJSON(t, handler.Signin, "/signin", map[string]interface{}{
			"email":    "diver@example.com",
			"password": "secret-password",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("bad credentials yield 401 and never 400", func(t *testing.T) {
		t.Parallel()

		userService := &mocks.MockUserService{DefaultError: auth.ErrInvalidCredentials}
		handler := NewAuthHandler(userService, cookieAuthConfig(), nil)

		w := postJSON(t, handler.Signin, "/signin", map[string]interface{}{
			"email":    "diver@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Incorrect email or password", resp["message"])
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&mocks.MockUserService{}, cookieAuthConfig(), nil)

		w := postJSON(t, handler.Signin, "/signin", map[string]interface{}{
			"email": "diver@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSignout(t *testing.T) {
	t.Parallel()

	t.Run("cookie carrier clears the cookie", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&mocks.MockUserService{}, cookieAuthConfig(), nil)

		req := httptest.NewRequest(http.MethodGet, "/signout", nil)
		w := httptest.NewRecorder()
		handler.Signout(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "jwt", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("bearer carrier just confirms", func(t *testing.T) {
		t.Parallel()

		cfg := cookieAuthConfig()
		cfg.TokenCarrier = config.CarrierBearer
		handler := NewAuthHandler(&mocks.MockUserService{}, cfg, nil)

		req := httptest.NewRequest(http.MethodGet, "/signout", nil)
		w := httptest.NewRecorder()
		handler.Signout(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}
