package handlers

import (
	"fmt"
	"fridge-manager/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"strings"
)

// MethodNotAllowed answers any method outside allowed with 405, an Allow
// header and a plain-text body naming the rejected method.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return c.Status(fiber.StatusMethodNotAllowed).
			SendString(fmt.Sprintf("Method %s Not Allowed", c.Method()))
	}
}

func currentSession(c *fiber.Ctx) (uuid.UUID, error) {
	sessionID, ok := c.Locals(domain.SessionLocal).(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return sessionID, nil
}

func ingredientID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidIngredientID
	}
	return id, nil
}
