package contract

import (
	"context"

	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.DocumentEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.DocumentEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar runs nearest-neighbour retrieval over the whole index.
	// The index is deliberately global: chunks uploaded by any user are
	// candidates for every query.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.DocumentEmbedding, error)
}
