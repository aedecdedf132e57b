package handlers

import (
	"errors"
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/ingredient"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	IngredientHandler interface {
		AddIngredient(c *fiber.Ctx) error
		RefreshExpiry(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetUnexpiredSample(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

// AddIngredient fills a draft the way the dialog does: name and purchase
// date first so the expiry is derived, then an explicit expiry_date if the
// caller sent one.
func (h *ingredientHandler) AddIngredient(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	req := new(domain.AddIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	loc := h.ingredientService.Location()
	draft := expiry.NewDraft(h.ingredientService.Now())
	if req.PurchaseDate != "" {
		purchaseDate, err := expiry.ParseDate(req.PurchaseDate, loc)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, domain.ErrInvalidDate)
		}
		draft.SetPurchaseDate(purchaseDate)
	}
	draft.SetName(req.Name)
	draft.SetQuantity(req.Quantity)
	if req.ExpiryDate != "" {
		expiryDate, err := expiry.ParseDate(req.ExpiryDate, loc)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, domain.ErrInvalidDate)
		}
		draft.SetExpiryDate(expiryDate)
	}

	res, err := h.ingredientService.AddIngredient(c.Context(), sessionID, draft)
	if err != nil {
		return presenters.ErrorResponse(c, addStatus(err), domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *ingredientHandler) RefreshExpiry(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRefreshExpiry, err)
	}

	id, err := ingredientID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRefreshExpiry, err)
	}

	if err := h.ingredientService.RefreshExpiry(c.Context(), sessionID, id); err != nil {
		log.Errorf("session %s: refresh ingredient %d: %v", sessionID, id, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRefreshExpiry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRefreshExpiry)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
	}

	id, err := ingredientID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
	}

	if err := h.ingredientService.DeleteIngredient(c.Context(), sessionID, id); err != nil {
		log.Errorf("session %s: delete ingredient %d: %v", sessionID, id, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	var items []domain.IngredientResponse
	if c.QueryBool("unexpired", false) {
		items, err = h.ingredientService.GetUnexpiredIngredients(c.Context(), sessionID)
	} else {
		items, err = h.ingredientService.GetIngredients(c.Context(), sessionID)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

// GetUnexpiredSample serves GET /ingredients: a bare JSON array, no envelope.
func (h *ingredientHandler) GetUnexpiredSample(c *fiber.Ctx) error {
	items, err := h.ingredientService.GetUnexpiredSamples(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func addStatus(err error) int {
	if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrQuantityRequired) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
