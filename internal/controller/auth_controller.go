package controller

import (
	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Get("/me", serverutils.JwtMiddleware, c.Me)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{
		"message": "User created successfully",
		"user_id": res.UserId,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return serverutils.Fail(ctx, err)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{
		"user_id":      res.UserId,
		"username":     res.Username,
		"access_token": res.AccessToken,
	})
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	raw, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return serverutils.Fail(ctx, serverutils.NewUnauthorizedError("Invalid token subject"))
	}

	res, err := c.service.Me(ctx.Context(), userId)
	if err != nil {
		return serverutils.Fail(ctx, err)
	}
	return serverutils.Success(ctx, fiber.Map{"user": res})
}
