package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/pkg/logger"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/unitofwork"
	"study-buddy-be/pkg/embedding"
	"study-buddy-be/pkg/utils"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, filename string, data []byte) (*dto.UploadResponse, error)
}

type documentService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger

	uploadDir    string
	chunkSize    int
	chunkOverlap int
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
	uploadDir string,
	chunkSize int,
	chunkOverlap int,
) IDocumentService {
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	return &documentService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
		uploadDir:         uploadDir,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

// Upload persists the raw file under a user-scoped directory, then
// indexes its text into the shared vector index. Indexing is global:
// chunks become retrievable by every session regardless of uploader.
func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, filename string, data []byte) (*dto.UploadResponse, error) {
	userDir := filepath.Join(s.uploadDir, userId.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, serverutils.NewServerError("failed to create upload directory", err)
	}

	storagePath := filepath.Join(userDir, filepath.Base(filename))
	if err := os.WriteFile(storagePath, data, 0o644); err != nil {
		return nil, serverutils.NewServerError("failed to save file", err)
	}

	chunks := utils.SplitText(string(data), s.chunkSize, s.chunkOverlap)

	document := &entity.Document{
		Id:          uuid.New(),
		Filename:    filepath.Base(filename),
		StoragePath: storagePath,
		SizeBytes:   int64(len(data)),
		ChunkCount:  len(chunks),
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	embeddings := make([]*entity.DocumentEmbedding, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, embedding.TaskTypeDocument)
		if err != nil {
			return nil, serverutils.NewServerError("failed to embed chunk", err)
		}
		embeddings = append(embeddings, &entity.DocumentEmbedding{
			Id:             uuid.New(),
			Chunk:          chunk,
			EmbeddingValue: res.Embedding.Values,
			DocumentId:     document.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewServerError("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, serverutils.NewServerError("failed to store document", err)
	}
	if err := uow.DocumentEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
		return nil, serverutils.NewServerError("failed to store embeddings", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewServerError("failed to commit ingestion", err)
	}

	s.log.Info("ingestion", "document indexed", map[string]interface{}{
		"document_id": document.Id,
		"user_id":     userId,
		"chunks":      len(chunks),
	})

	return &dto.UploadResponse{
		DocumentId: document.Id,
		Filename:   document.Filename,
		ChunkCount: len(chunks),
	}, nil
}
