package handlers

import (
	"errors"
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/reminder"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReminderHandler interface {
		SendExpiryReminder(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
		validator       *validator.Validate
	}
)

func NewReminderHandler(reminderService reminder.ReminderService, validator *validator.Validate) ReminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
		validator:       validator,
	}
}

func (h *reminderHandler) SendExpiryReminder(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendExpiryReminder, err)
	}

	req := new(domain.ExpiryReminderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendExpiryReminder, err)
	}

	res, err := h.reminderService.SendExpiryReminder(c.Context(), sessionID, *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrMailNotConfigured), errors.Is(err, domain.ErrNothingToRemind):
			status = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrSendMailFailed):
			status = fiber.StatusBadGateway
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSendExpiryReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendExpiryReminder)
}
