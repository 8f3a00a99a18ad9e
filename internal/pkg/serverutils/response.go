package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Responses carry a "status" field plus operation-specific payload.

func Success(ctx *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	return ctx.JSON(body)
}

func Fail(ctx *fiber.Ctx, err error) error {
	code := StatusCode(err)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return ctx.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}

// ErrorHandlerMiddleware converts uncaught handler errors into the
// standard error payload.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return Fail(ctx, err)
		}
		return nil
	}
}
