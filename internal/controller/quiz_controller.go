package controller

import (
	"errors"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type quizController struct {
	service service.IQuizService
}

func NewQuizController(service service.IQuizService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/qa")
	h.Post("/start", c.Start)
	h.Post("/submit", c.Submit)
}

func (c *quizController) Start(ctx *fiber.Ctx) error {
	var req dto.QuizStartRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	res, err := c.service.Start(ctx.Context(), &req)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status":    "started",
		"mode":      res.Mode,
		"questions": res.Questions,
	})
}

func (c *quizController) Submit(ctx *fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		// A missing exam key is a soft condition reported in the payload,
		// not an HTTP failure.
		if errors.Is(err, service.ErrNoActiveQuiz) {
			return ctx.JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return serverutils.Fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status":        "submitted",
		"score":         res.Score,
		"feedback":      res.Feedback,
		"correct_count": res.CorrectCount,
		"total":         res.Total,
	})
}
