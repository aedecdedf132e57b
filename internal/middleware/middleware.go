package middleware

import (
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"time"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(sessionManager session.SessionManager) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + domain.SessionHeader,
		ExposeHeaders: domain.SessionHeader,
	})
}

// SessionMiddleware attaches the caller's fridge session to the request.
// The id is read from the X-Session-ID header, then the session cookie, and
// is echoed back in both so either kind of client can keep it.
func (m *middleware) SessionMiddleware(sessionManager session.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(domain.SessionHeader)
		if raw == "" {
			raw = c.Cookies(domain.SessionCookie)
		}

		sessionID, created, err := sessionManager.Resolve(c.Context(), raw)
		if err != nil {
			log.Errorf("resolve session: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}

		if created || raw != sessionID.String() {
			c.Cookie(&fiber.Cookie{
				Name:     domain.SessionCookie,
				Value:    sessionID.String(),
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Set(domain.SessionHeader, sessionID.String())
		c.Locals(domain.SessionLocal, sessionID)
		return c.Next()
	}
}
