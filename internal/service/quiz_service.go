package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-buddy-be/internal/constant"
	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/pkg/logger"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/specification"
	"study-buddy-be/internal/repository/unitofwork"
	"study-buddy-be/pkg/embedding"
	"study-buddy-be/pkg/llm"

	"github.com/google/uuid"
)

// ErrNoActiveQuiz is returned by Submit when the session has no stored
// answer key. It is a soft condition, not an HTTP failure.
var ErrNoActiveQuiz = errors.New("Session or exam data not found")

type IQuizService interface {
	Start(ctx context.Context, req *dto.QuizStartRequest) (*dto.QuizStartResponse, error)
	Submit(ctx context.Context, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
}

type quizService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	log               logger.ILogger

	retrievalTopK int
}

func NewQuizService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
	retrievalTopK int,
) IQuizService {
	if retrievalTopK <= 0 {
		retrievalTopK = 3
	}
	return &quizService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		log:               log,
		retrievalTopK:     retrievalTopK,
	}
}

// Start generates a quiz for a session and stores the answer key. The
// endpoint never fails on model trouble: when generation or parsing
// breaks down the fixed fallback set is served instead.
func (s *quizService) Start(ctx context.Context, req *dto.QuizStartRequest) (*dto.QuizStartResponse, error) {
	questions := s.generate(ctx, req.Topic)

	clientQuestions, examKey := splitQuiz(questions)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: req.SessionId})
	if err != nil {
		return nil, serverutils.NewServerError("failed to load session", err)
	}
	if session == nil {
		session = &entity.ChatSession{
			Id:         uuid.New(),
			SessionKey: req.SessionId,
			Title:      "Unnamed session",
			CreatedAt:  time.Now(),
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, serverutils.NewServerError("failed to create session", err)
		}
	}
	if err := uow.ChatSessionRepository().SetExamKey(ctx, session.Id, examKey); err != nil {
		return nil, serverutils.NewServerError("failed to store exam key", err)
	}

	return &dto.QuizStartResponse{
		Mode:      "proctored",
		Questions: clientQuestions,
	}, nil
}

func (s *quizService) Submit(ctx context.Context, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: req.SessionId})
	if err != nil {
		return nil, serverutils.NewServerError("failed to load session", err)
	}
	if session == nil || len(session.ExamKey) == 0 {
		return nil, ErrNoActiveQuiz
	}

	correct, total := gradeQuiz(session.ExamKey, req.Answers)
	score := float64(correct) / float64(total) * 100

	return &dto.QuizSubmitResponse{
		Score:        score,
		Feedback:     scoreLabel(score),
		CorrectCount: correct,
		Total:        total,
	}, nil
}

// generate asks the model for questions grounded in retrieved document
// chunks and falls back to the built-in set on any failure.
func (s *quizService) generate(ctx context.Context, topic string) []dto.QuizQuestion {
	topicClause := ""
	query := "key concepts of the uploaded document"
	if topic != "" {
		topicClause = fmt.Sprintf(" about the topic '%s'", topic)
		query = topic
	}
	prompt := fmt.Sprintf(constant.QuizGenerationPrompt, topicClause)

	chunks, err := retrieveChunks(ctx, s.uowFactory, s.embeddingProvider, query, s.retrievalTopK)
	if err != nil {
		s.log.Warn("quiz", "retrieval failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackQuiz()
	}
	prompt = buildQuizPrompt(chunks, prompt)

	raw, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("quiz", "generation failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackQuiz()
	}

	questions, err := parseQuizResponse(raw)
	if err != nil {
		s.log.Warn("quiz", "unparseable model output, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackQuiz()
	}
	return questions
}
