package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/service"
	"github.com/repset/repset-api/internal/service/auth"
)

func testUser(t *testing.T) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := domain.NewUserFromStorage(
		testUserID, "test@example.com", "testuser", "hashed-password",
		false, "", now, now,
	)
	require.NoError(t, err)
	return user
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers and returns a token pair", func(t *testing.T) {
		userSvc := new(mockUserService)
		jwtSvc := new(mockJWTService)
		handler := NewAuthHandler(userSvc, jwtSvc, testLogger())

		userSvc.On("Register", mock.Anything, "test@example.com", "testuser", "password123").
			Return(testUser(t), nil)
		jwtSvc.On("GenerateToken", mock.Anything, testUserID).Return("access-token", nil)
		jwtSvc.On("GenerateRefreshToken", mock.Anything, testUserID).Return("refresh-token", nil)

		req := newTestRequest(t, http.MethodPost, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Username: "testuser",
			Password: "password123",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, testUserID, resp.UserID)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("rejects a short password before reaching the service", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		req := newTestRequest(t, http.MethodPost, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Username: "testuser",
			Password: "12345",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		userSvc.AssertNotCalled(t, "Register",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps duplicate accounts to 400", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		userSvc.On("Register", mock.Anything, "test@example.com", "testuser", "password123").
			Return(nil, service.NewError(service.CodeUserAlreadyExists, "account already exists", nil))

		req := newTestRequest(t, http.MethodPost, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Username: "testuser",
			Password: "password123",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, string(service.CodeUserAlreadyExists), resp.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("logs in with valid credentials", func(t *testing.T) {
		userSvc := new(mockUserService)
		jwtSvc := new(mockJWTService)
		handler := NewAuthHandler(userSvc, jwtSvc, testLogger())

		userSvc.On("Authenticate", mock.Anything, "test@example.com", "password123").
			Return(testUser(t), nil)
		jwtSvc.On("GenerateToken", mock.Anything, testUserID).Return("access-token", nil)
		jwtSvc.On("GenerateRefreshToken", mock.Anything, testUserID).Return("refresh-token", nil)

		req := newTestRequest(t, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "access-token", resp.AccessToken)
	})

	t.Run("maps bad credentials to 401", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		userSvc.On("Authenticate", mock.Anything, "test@example.com", "wrong").
			Return(nil, service.NewError(service.CodeUnauthorized, "invalid email or password", nil))

		req := newTestRequest(t, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "test@example.com",
			Password: "wrong",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns 500 when token generation fails", func(t *testing.T) {
		userSvc := new(mockUserService)
		jwtSvc := new(mockJWTService)
		handler := NewAuthHandler(userSvc, jwtSvc, testLogger())

		userSvc.On("Authenticate", mock.Anything, "test@example.com", "password123").
			Return(testUser(t), nil)
		jwtSvc.On("GenerateToken", mock.Anything, testUserID).
			Return("", assert.AnError)

		req := newTestRequest(t, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		}, nil)
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("exchanges a refresh token for a new pair", func(t *testing.T) {
		jwtSvc := new(mockJWTService)
		handler := NewAuthHandler(new(mockUserService), jwtSvc, testLogger())

		jwtSvc.On("ValidateRefreshToken", mock.Anything, "old-refresh").
			Return(&auth.Claims{UserID: testUserID, TokenType: "refresh"}, nil)
		jwtSvc.On("GenerateToken", mock.Anything, testUserID).Return("new-access", nil)
		jwtSvc.On("GenerateRefreshToken", mock.Anything, testUserID).Return("new-refresh", nil)

		req := newTestRequest(t, http.MethodPost, "/auth/refresh",
			RefreshTokenRequest{RefreshToken: "old-refresh"}, nil)
		rec := httptest.NewRecorder()
		handler.RefreshToken(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("rejects an invalid refresh token", func(t *testing.T) {
		jwtSvc := new(mockJWTService)
		handler := NewAuthHandler(new(mockUserService), jwtSvc, testLogger())

		jwtSvc.On("ValidateRefreshToken", mock.Anything, "bogus").
			Return(nil, auth.ErrInvalidToken)

		req := newTestRequest(t, http.MethodPost, "/auth/refresh",
			RefreshTokenRequest{RefreshToken: "bogus"}, nil)
		rec := httptest.NewRecorder()
		handler.RefreshToken(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	userSvc := new(mockUserService)
	handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

	userSvc.On("GetUser", mock.Anything, testUserID).Return(testUser(t), nil)

	rec := httptest.NewRecorder()
	handler.Me(rec, newTestRequest(t, http.MethodGet, "/users/me", nil, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "test@example.com", resp.Email)
	assert.Equal(t, "testuser", resp.Username)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	t.Run("changes the password", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		userSvc.On("UpdateUserPassword", mock.Anything, testUserID, "old-passw0rd", "new-passw0rd").
			Return(nil)

		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, newTestRequest(t, http.MethodPut, "/users/me/password",
			ChangePasswordRequest{OldPassword: "old-passw0rd", NewPassword: "new-passw0rd"}, nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		userSvc.AssertExpectations(t)
	})

	t.Run("wrong old password maps to 401", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		userSvc.On("UpdateUserPassword", mock.Anything, testUserID, "wrong", "new-passw0rd").
			Return(service.NewError(service.CodeUnauthorized, "old password is incorrect", nil))

		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, newTestRequest(t, http.MethodPut, "/users/me/password",
			ChangePasswordRequest{OldPassword: "wrong", NewPassword: "new-passw0rd"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a short new password before the service", func(t *testing.T) {
		userSvc := new(mockUserService)
		handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, newTestRequest(t, http.MethodPut, "/users/me/password",
			ChangePasswordRequest{OldPassword: "old-passw0rd", NewPassword: "abc"}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		userSvc.AssertNotCalled(t, "UpdateUserPassword",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	userSvc := new(mockUserService)
	handler := NewAuthHandler(userSvc, new(mockJWTService), testLogger())

	userSvc.On("DeleteUser", mock.Anything, testUserID).Return(nil)

	rec := httptest.NewRecorder()
	handler.DeleteAccount(rec, newTestRequest(t, http.MethodDelete, "/users/me", nil, nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	userSvc.AssertExpectations(t)
}
