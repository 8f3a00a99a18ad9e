package controller

import (
	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type feedbackController struct {
	service service.IFeedbackService
}

func NewFeedbackController(service service.IFeedbackService) IFeedbackController {
	return &feedbackController{service: service}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	r.Post("/feedback", c.Submit)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	if err := c.service.Submit(ctx.Context(), &req); err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{"message": "Feedback received"})
}
