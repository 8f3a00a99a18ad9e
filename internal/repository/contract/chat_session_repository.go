package contract

import (
	"context"

	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SetExamKey replaces the stored quiz answer key for a session.
	SetExamKey(ctx context.Context, sessionId uuid.UUID, key []entity.ExamKeyItem) error
}
