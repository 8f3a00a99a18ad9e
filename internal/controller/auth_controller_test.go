package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error)
	loginFn  func(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error)
	meFn     func(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

func (s *stubAuthService) Signup(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error) {
	return s.signupFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	return s.meFn(ctx, userId)
}

func newAuthTestApp(svc *stubAuthService) *fiber.App {
	app := fiber.New()
	NewAuthController(svc).RegisterRoutes(app)
	return app
}

func TestAuthControllerSignup(t *testing.T) {
	userId := uuid.New()
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error) {
			assert.Equal(t, "alice", req.Username)
			return &dto.SignupResponse{UserId: userId}, nil
		},
	}
	app := newAuthTestApp(svc)

	body, _ := json.Marshal(dto.AuthRequest{Username: "alice", Password: "secret123"})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, userId.String(), payload["user_id"])
}

func TestAuthControllerSignupConflict(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error) {
			return nil, serverutils.NewConflictError("Username already exists")
		},
	}
	app := newAuthTestApp(svc)

	body, _ := json.Marshal(dto.AuthRequest{Username: "alice", Password: "secret123"})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Username already exists", payload["message"])
}

func TestAuthControllerSignupValidation(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	app := newAuthTestApp(svc)

	// Password below the minimum length.
	body, _ := json.Marshal(dto.AuthRequest{Username: "alice", Password: "x"})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthControllerLoginUnauthorized(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error) {
			return nil, serverutils.NewUnauthorizedError("Invalid credentials")
		},
	}
	app := newAuthTestApp(svc)

	body, _ := json.Marshal(dto.AuthRequest{Username: "alice", Password: "wrongpass"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthControllerLoginSuccess(t *testing.T) {
	userId := uuid.New()
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				UserId:      userId,
				Username:    "alice",
				AccessToken: "token-123",
			}, nil
		},
	}
	app := newAuthTestApp(svc)

	body, _ := json.Marshal(dto.AuthRequest{Username: "alice", Password: "secret123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "token-123", payload["access_token"])
}
