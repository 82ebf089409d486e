package middleware

import (
	"fmt"
	"strings"

	"chesscore/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateMoveBody parses and validates a move request body, storing the
// validated struct in the request locals for the handler.
func ValidateMoveBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		move := &model.MoveRequest{}
		if err := c.BodyParser(move); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "invalid request body",
				"details": err.Error(),
			})
		}

		if errs := validate.Struct(move); errs != nil {
			var details strings.Builder
			for _, err := range errs.(validator.ValidationErrors) {
				if details.Len() > 0 {
					details.WriteString("; ")
				}
				switch err.Tag() {
				case "min":
					details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
				case "max":
					details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
				default:
					details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
				}
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation failed",
				"details": details.String(),
			})
		}

		c.Locals("validatedBody", move)
		return c.Next()
	}
}
