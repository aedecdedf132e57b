package handlers

import (
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		GetSession(c *fiber.Ctx) error
		EndSession(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionManager session.SessionManager
	}
)

func NewSessionHandler(sessionManager session.SessionManager) SessionHandler {
	return &sessionHandler{
		sessionManager: sessionManager,
	}
}

func (h *sessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, domain.SessionResponse{SessionID: sessionID.String()}, fiber.StatusOK, "session active")
}

func (h *sessionHandler) EndSession(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEndSession, err)
	}

	if err := h.sessionManager.End(c.Context(), sessionID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedEndSession, err)
	}

	c.ClearCookie(domain.SessionCookie)
	c.Response().Header.Del(domain.SessionHeader)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}
