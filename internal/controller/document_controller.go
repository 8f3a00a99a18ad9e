package controller

import (
	"io"

	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.FormValue("user_id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.NewError(fiber.StatusBadRequest, "invalid user_id"))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.Fail(ctx, fiber.NewError(fiber.StatusBadRequest, "file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.Fail(ctx, serverutils.NewServerError("failed to open upload", err))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return serverutils.Fail(ctx, serverutils.NewServerError("failed to read upload", err))
	}

	res, err := c.service.Upload(ctx.Context(), userId, fileHeader.Filename, data)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{
		"message":     "File uploaded and indexed successfully",
		"document_id": res.DocumentId,
		"filename":    res.Filename,
		"chunk_count": res.ChunkCount,
	})
}
