package handlers

import (
	"fridge-manager/domain"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/ingredient"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetCatalog(c *fiber.Ctx) error
		PreviewExpiry(c *fiber.Ctx) error
	}

	catalogHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewCatalogHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *catalogHandler) GetCatalog(c *fiber.Ctx) error {
	options := expiry.Options()
	res := make([]domain.CatalogOptionResponse, 0, len(options))
	for _, option := range options {
		res = append(res, domain.CatalogOptionResponse{
			Name:           option.Name,
			FridgeLifeDays: option.FridgeLifeDays,
		})
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

// PreviewExpiry runs the calculator without touching any draft. An unknown
// name is answered with known=false and an empty expiry_date.
func (h *catalogHandler) PreviewExpiry(c *fiber.Ctx) error {
	req := new(domain.ExpiryPreviewRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewExpiry, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewExpiry, err)
	}

	purchaseDate, err := expiry.ParseDate(req.PurchaseDate, h.ingredientService.Location())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewExpiry, domain.ErrInvalidDate)
	}

	expiryDate, known := expiry.Calculate(req.Name, purchaseDate)
	return presenters.SuccessResponse(c, domain.ExpiryPreviewResponse{
		Name:         req.Name,
		PurchaseDate: expiry.FormatDate(purchaseDate),
		ExpiryDate:   expiry.FormatDate(expiryDate),
		Known:        known,
	}, fiber.StatusOK, domain.MessageSuccessPreviewExpiry)
}
