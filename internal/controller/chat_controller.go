package controller

import (
	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/chat/history/:session_id", c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return serverutils.Fail(ctx, fiber.NewError(fiber.StatusBadRequest, "invalid user_id"))
	}

	res, err := c.service.SendChat(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{"response": res.Response})
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("session_id")

	history, err := c.service.GetHistory(ctx.Context(), sessionKey)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{"history": history})
}
