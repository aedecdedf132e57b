package handlers

import (
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/ingredient"
	"fridge-manager/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	// DraftHandler backs the add-ingredient dialog. The draft lives in the
	// session until it is submitted or cancelled.
	DraftHandler interface {
		GetDraft(c *fiber.Ctx) error
		UpdateDraft(c *fiber.Ctx) error
		CancelDraft(c *fiber.Ctx) error
		SubmitDraft(c *fiber.Ctx) error
	}

	draftHandler struct {
		sessionManager    session.SessionManager
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewDraftHandler(sessionManager session.SessionManager, ingredientService ingredient.IngredientService, validator *validator.Validate) DraftHandler {
	return &draftHandler{
		sessionManager:    sessionManager,
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *draftHandler) GetDraft(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	draft, err := h.sessionManager.GetDraft(sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, toDraftResponse(draft), fiber.StatusOK, domain.MessageSuccessGetDraft)
}

// UpdateDraft applies the sent fields in dialog order: name, purchase_date,
// quantity, expiry_date. A changed name or purchase date re-derives the
// expiry and replaces any hand-entered value.
func (h *draftHandler) UpdateDraft(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDraft, err)
	}

	req := new(domain.UpdateDraftRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDraft, err)
	}

	purchaseDate, err := h.optionalDate(req.PurchaseDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDraft, err)
	}
	expiryDate, err := h.optionalDate(req.ExpiryDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDraft, err)
	}

	draft, err := h.sessionManager.UpdateDraft(sessionID, func(draft *expiry.Draft) {
		if req.Name != nil {
			draft.SetName(*req.Name)
		}
		if req.PurchaseDate != nil {
			draft.SetPurchaseDate(purchaseDate)
		}
		if req.Quantity != nil {
			draft.SetQuantity(*req.Quantity)
		}
		if req.ExpiryDate != nil {
			draft.SetExpiryDate(expiryDate)
		}
	})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDraft, err)
	}

	return presenters.SuccessResponse(c, toDraftResponse(draft), fiber.StatusOK, domain.MessageSuccessUpdateDraft)
}

func (h *draftHandler) CancelDraft(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	draft, err := h.sessionManager.ResetDraft(sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, toDraftResponse(draft), fiber.StatusOK, domain.MessageSuccessCancelDraft)
}

func (h *draftHandler) SubmitDraft(c *fiber.Ctx) error {
	sessionID, err := currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.sessionManager.SubmitDraft(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, addStatus(err), domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

// optionalDate treats an empty string as "clear the date".
func (h *draftHandler) optionalDate(value *string) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, nil
	}
	date, err := expiry.ParseDate(*value, h.ingredientService.Location())
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}

func toDraftResponse(draft expiry.Draft) domain.DraftResponse {
	return domain.DraftResponse{
		Name:         draft.Name,
		Quantity:     draft.Quantity,
		PurchaseDate: expiry.FormatDate(draft.PurchaseDate),
		ExpiryDate:   expiry.FormatDate(draft.ExpiryDate),
	}
}
