package service

import (
	"context"
	"time"

	"study-buddy-be/internal/constant"
	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/pkg/logger"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/memory"
	"study-buddy-be/internal/repository/specification"
	"study-buddy-be/internal/repository/unitofwork"
	"study-buddy-be/pkg/embedding"
	"study-buddy-be/pkg/llm"
	"study-buddy-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	GetOrCreateSession(ctx context.Context, userId uuid.UUID, sessionKey string) (*entity.ChatSession, error)
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	bufferRepo        *memory.BufferRepository
	log               logger.ILogger

	retrievalTopK int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	bufferRepo *memory.BufferRepository,
	log logger.ILogger,
	retrievalTopK int,
) IChatService {
	if retrievalTopK <= 0 {
		retrievalTopK = 3
	}
	return &chatService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		bufferRepo:        bufferRepo,
		log:               log,
		retrievalTopK:     retrievalTopK,
	}
}

// GetOrCreateSession is idempotent: it returns the existing session for
// the key or creates an empty one.
func (s *chatService) GetOrCreateSession(ctx context.Context, userId uuid.UUID, sessionKey string) (*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, serverutils.NewServerError("failed to load session", err)
	}
	if session != nil {
		return session, nil
	}

	session = &entity.ChatSession{
		Id:         uuid.New(),
		SessionKey: sessionKey,
		UserId:     userId,
		Title:      "Unnamed session",
		CreatedAt:  time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, serverutils.NewServerError("failed to create session", err)
	}
	return session, nil
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, err := s.GetOrCreateSession(ctx, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	buffer, err := s.loadBuffer(ctx, session)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Persist the user's turn before the model call so history reflects
	// the question even when the LLM fails.
	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          req.Message,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: session.Id,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, serverutils.NewServerError("failed to store message", err)
	}

	chunks, err := s.retrieve(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	groundedPrompt := buildGroundedPrompt(chunks, req.Message)
	history := buildChatHistory(buffer, groundedPrompt)

	reply, err := s.llmProvider.Chat(ctx, history)
	if err != nil {
		return nil, serverutils.NewServerError("llm chat failed", err)
	}

	botMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          reply,
		Role:          constant.ChatMessageRoleBot,
		ChatSessionId: session.Id,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, serverutils.NewServerError("failed to store reply", err)
	}

	buffer.Append(constant.ChatMessageRoleUser, req.Message)
	buffer.Append(constant.ChatMessageRoleBot, reply)
	s.bufferRepo.Save(buffer)

	s.log.Info("chat", "turn completed", map[string]interface{}{
		"session":         session.SessionKey,
		"retrieved_count": len(chunks),
	})

	return &dto.ChatResponse{Response: reply}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionKey string) ([]*dto.ChatHistoryMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, serverutils.NewServerError("failed to load session", err)
	}
	if session == nil {
		return []*dto.ChatHistoryMessage{}, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewServerError("failed to load history", err)
	}

	history := make([]*dto.ChatHistoryMessage, 0, len(messages))
	for _, m := range messages {
		history = append(history, &dto.ChatHistoryMessage{
			Role:      m.Role,
			Text:      m.Chat,
			CreatedAt: m.CreatedAt,
		})
	}
	return history, nil
}

// loadBuffer reconstructs the memory buffer from the persisted message
// list when it is not cached.
func (s *chatService) loadBuffer(ctx context.Context, session *entity.ChatSession) (*store.MemoryBuffer, error) {
	if buffer, found := s.bufferRepo.Get(session.SessionKey); found {
		return buffer, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: constant.HistoryWindow},
	)
	if err != nil {
		return nil, serverutils.NewServerError("failed to load history", err)
	}

	buffer := store.NewMemoryBuffer(session.SessionKey, constant.HistoryWindow)
	// Messages arrive newest-first; replay oldest-first.
	for i := len(messages) - 1; i >= 0; i-- {
		buffer.Append(messages[i].Role, messages[i].Chat)
	}
	return buffer, nil
}

func (s *chatService) retrieve(ctx context.Context, question string) ([]string, error) {
	return retrieveChunks(ctx, s.uowFactory, s.embeddingProvider, question, s.retrievalTopK)
}
