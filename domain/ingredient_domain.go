package domain

import (
	"errors"
)

var (
	MessageSuccessAddIngredient      = "ingredient added successfully"
	MessageSuccessRefreshExpiry      = "ingredient expiry refreshed successfully"
	MessageSuccessDeleteIngredient   = "ingredient deleted successfully"
	MessageSuccessGetIngredients     = "ingredients retrieved successfully"
	MessageSuccessGetDraft           = "draft retrieved successfully"
	MessageSuccessUpdateDraft        = "draft updated successfully"
	MessageSuccessCancelDraft        = "draft discarded successfully"
	MessageSuccessGetCatalog         = "ingredient catalog retrieved successfully"
	MessageSuccessPreviewExpiry      = "expiry date calculated successfully"
	MessageSuccessSendExpiryReminder = "expiry reminder sent successfully"

	MessageFailedAddIngredient      = "failed to add ingredient"
	MessageFailedRefreshExpiry      = "failed to refresh ingredient expiry"
	MessageFailedDeleteIngredient   = "failed to delete ingredient"
	MessageFailedGetIngredients     = "failed to retrieve ingredients"
	MessageFailedUpdateDraft        = "failed to update draft"
	MessageFailedPreviewExpiry      = "failed to calculate expiry date"
	MessageFailedSendExpiryReminder = "failed to send expiry reminder"

	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrInvalidIngredientID = errors.New("invalid ingredient id")
	ErrNameRequired        = errors.New("ingredient name is required")
	ErrQuantityRequired    = errors.New("ingredient quantity is required")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMailNotConfigured   = errors.New("mail delivery is not configured")
	ErrNothingToRemind     = errors.New("no ingredients are about to expire")
	ErrSendMailFailed      = errors.New("failed to deliver reminder mail")
)

type (
	// IngredientResponse is the wire shape of an inventory record. It keeps
	// the camelCase keys the fridge dashboard and GET /ingredients expose.
	IngredientResponse struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Quantity   string `json:"quantity"`
		ExpiryDate string `json:"expiryDate"`
	}

	AddIngredientRequest struct {
		Name         string `json:"name" validate:"required"`
		Quantity     string `json:"quantity" validate:"required"`
		PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpiryDate   string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	// UpdateDraftRequest carries only the fields that changed; nil means
	// untouched.
	UpdateDraftRequest struct {
		Name         *string `json:"name"`
		Quantity     *string `json:"quantity"`
		PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpiryDate   *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	DraftResponse struct {
		Name         string `json:"name"`
		Quantity     string `json:"quantity"`
		PurchaseDate string `json:"purchase_date"`
		ExpiryDate   string `json:"expiry_date"`
	}

	CatalogOptionResponse struct {
		Name           string `json:"name"`
		FridgeLifeDays int    `json:"fridge_life_days"`
	}

	ExpiryPreviewRequest struct {
		Name         string `query:"name" validate:"required"`
		PurchaseDate string `query:"purchase_date" validate:"required,datetime=2006-01-02"`
	}

	ExpiryPreviewResponse struct {
		Name         string `json:"name"`
		PurchaseDate string `json:"purchase_date"`
		ExpiryDate   string `json:"expiry_date"`
		Known        bool   `json:"known"`
	}

	ExpiryReminderRequest struct {
		Email string `json:"email" validate:"required,email"`
		Days  int    `json:"days" validate:"omitempty,min=1"`
	}

	ExpiryReminderResponse struct {
		Email string               `json:"email"`
		Days  int                  `json:"days"`
		Items []IngredientResponse `json:"items"`
	}
)
