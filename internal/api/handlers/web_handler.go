package handlers

import (
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/recipe"
	"github.com/gofiber/fiber/v2"
)

type (
	WebHandler interface {
		Index(c *fiber.Ctx) error
	}

	webHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewWebHandler(recipeService recipe.RecipeService) WebHandler {
	return &webHandler{
		recipeService: recipeService,
	}
}

// Index renders the dashboard shell; the fridge tab loads its rows from the
// session API in the browser.
func (h *webHandler) Index(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":   "Fridge Manager",
		"Catalog": expiry.Options(),
		"Recipes": recipes,
	})
}
