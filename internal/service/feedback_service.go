package service

import (
	"context"
	"time"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/pkg/logger"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, req *dto.FeedbackRequest) error
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.FeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback := &entity.Feedback{
		Id:         uuid.New(),
		SessionKey: req.SessionId,
		Rating:     req.Rating,
		Comments:   req.Comments,
		CreatedAt:  time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return serverutils.NewServerError("failed to store feedback", err)
	}

	s.log.Info("feedback", "feedback recorded", map[string]interface{}{
		"session": req.SessionId,
		"rating":  req.Rating,
	})
	return nil
}
