package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	sendFn    func(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	historyFn func(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error)
}

func (s *stubChatService) GetOrCreateSession(ctx context.Context, userId uuid.UUID, sessionKey string) (*entity.ChatSession, error) {
	return nil, nil
}

func (s *stubChatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.sendFn(ctx, userId, req)
}

func (s *stubChatService) GetHistory(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error) {
	return s.historyFn(ctx, sessionKey)
}

func newChatTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func TestChatControllerChat(t *testing.T) {
	userId := uuid.New()
	svc := &stubChatService{
		sendFn: func(ctx context.Context, gotUserId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
			assert.Equal(t, userId, gotUserId)
			assert.Equal(t, "sess-1", req.SessionId)
			return &dto.ChatResponse{Response: "A CPU executes instructions."}, nil
		},
	}
	app := newChatTestApp(svc)

	body, _ := json.Marshal(dto.ChatRequest{
		UserId:    userId.String(),
		SessionId: "sess-1",
		Message:   "What is a CPU?",
	})
	req := httptest.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "A CPU executes instructions.", payload["response"])
}

func TestChatControllerChatInvalidUserId(t *testing.T) {
	svc := &stubChatService{
		sendFn: func(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	app := newChatTestApp(svc)

	body, _ := json.Marshal(dto.ChatRequest{
		UserId:    "not-a-uuid",
		SessionId: "sess-1",
		Message:   "hello",
	})
	req := httptest.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatControllerHistory(t *testing.T) {
	now := time.Now()
	svc := &stubChatService{
		historyFn: func(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error) {
			assert.Equal(t, "sess-1", sessionKey)
			return []*dto.ChatHistoryMessage{
				{Role: "user", Text: "hi", CreatedAt: now},
				{Role: "bot", Text: "hello", CreatedAt: now},
			}, nil
		},
	}
	app := newChatTestApp(svc)

	req := httptest.NewRequest("GET", "/chat/history/sess-1", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Status  string                   `json:"status"`
		History []dto.ChatHistoryMessage `json:"history"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "success", payload.Status)
	require.Len(t, payload.History, 2)
	assert.Equal(t, "user", payload.History[0].Role)
	assert.Equal(t, "bot", payload.History[1].Role)
}

func TestChatControllerHistoryUnknownSession(t *testing.T) {
	svc := &stubChatService{
		historyFn: func(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error) {
			return []*dto.ChatHistoryMessage{}, nil
		},
	}
	app := newChatTestApp(svc)

	req := httptest.NewRequest("GET", "/chat/history/never-seen", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Status  string                   `json:"status"`
		History []dto.ChatHistoryMessage `json:"history"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Empty(t, payload.History)
}
