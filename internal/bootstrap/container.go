package bootstrap

import (
	"log"

	"study-buddy-be/internal/config"
	"study-buddy-be/internal/controller"
	"study-buddy-be/internal/pkg/logger"
	"study-buddy-be/internal/repository/memory"
	"study-buddy-be/internal/repository/unitofwork"
	"study-buddy-be/internal/service"
	"study-buddy-be/pkg/embedding"
	"study-buddy-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	AuthController     controller.IAuthController
	DocumentController controller.IDocumentController
	ChatController     controller.IChatController
	QuizController     controller.IQuizController
	FeedbackController controller.IFeedbackController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GroqAPIKey,
		cfg.Ai.GroqBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	bufferRepo := memory.NewBufferRepository()

	authService := service.NewAuthService(uowFactory)
	documentService := service.NewDocumentService(
		uowFactory,
		embeddingProvider,
		sysLogger,
		cfg.App.UploadDir,
		cfg.Ai.ChunkSize,
		cfg.Ai.ChunkOverlap,
	)
	chatService := service.NewChatService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		bufferRepo,
		sysLogger,
		cfg.Ai.RetrievalTopK,
	)
	quizService := service.NewQuizService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		sysLogger,
		cfg.Ai.RetrievalTopK,
	)
	feedbackService := service.NewFeedbackService(uowFactory, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		DocumentController: controller.NewDocumentController(documentService),
		ChatController:     controller.NewChatController(chatService),
		QuizController:     controller.NewQuizController(quizService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
	}
}
