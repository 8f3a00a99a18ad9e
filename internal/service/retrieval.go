package service

import (
	"context"

	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/unitofwork"
	"study-buddy-be/pkg/embedding"
)

// retrieveChunks embeds the query and pulls the nearest chunks from the
// global index. Shared by the chat and quiz pipelines.
func retrieveChunks(
	ctx context.Context,
	uowFactory unitofwork.RepositoryFactory,
	provider embedding.EmbeddingProvider,
	query string,
	limit int,
) ([]string, error) {
	res, err := provider.Generate(query, embedding.TaskTypeQuery)
	if err != nil {
		return nil, serverutils.NewServerError("failed to embed query", err)
	}

	uow := uowFactory.NewUnitOfWork(ctx)
	results, err := uow.DocumentEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit)
	if err != nil {
		return nil, serverutils.NewServerError("vector search failed", err)
	}

	chunks := make([]string, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, r.Chunk)
	}
	return chunks, nil
}
