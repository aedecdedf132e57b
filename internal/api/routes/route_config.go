package routes

import (
	"fridge-manager/internal/api/handlers"
	"fridge-manager/internal/middleware"
	"fridge-manager/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	IngredientHandler handlers.IngredientHandler
	DraftHandler      handlers.DraftHandler
	CatalogHandler    handlers.CatalogHandler
	RecipeHandler     handlers.RecipeHandler
	ReminderHandler   handlers.ReminderHandler
	SessionHandler    handlers.SessionHandler
	WebHandler        handlers.WebHandler
	Middleware        middleware.Middleware
	SessionManager    session.SessionManager
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Ingredients()
	c.Fridge()
	c.Catalog()
	c.Recipes()
	if c.WebHandler != nil {
		c.Web()
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Ingredients is the read-only sample endpoint. Add registers GET alone,
// without the implicit HEAD route, so every other method gets the 405.
func (c *Config) Ingredients() {
	c.App.Add(fiber.MethodGet, "/ingredients", c.IngredientHandler.GetUnexpiredSample)
	c.App.All("/ingredients", handlers.MethodNotAllowed(fiber.MethodGet))
}

func (c *Config) Fridge() {
	sessions := c.Middleware.SessionMiddleware(c.SessionManager)

	sessionRoutes := c.App.Group("/api/v1/session", sessions)
	sessionRoutes.Get("", c.SessionHandler.GetSession)
	sessionRoutes.Delete("", c.SessionHandler.EndSession)

	fridge := c.App.Group("/api/v1/fridge", sessions)

	// Add-ingredient dialog
	fridge.Get("/draft", c.DraftHandler.GetDraft)
	fridge.Patch("/draft", c.DraftHandler.UpdateDraft)
	fridge.Delete("/draft", c.DraftHandler.CancelDraft)
	fridge.Post("/draft/submit", c.DraftHandler.SubmitDraft)

	fridge.Post("/reminder", c.ReminderHandler.SendExpiryReminder)

	// Inventory
	fridge.Get("", c.IngredientHandler.GetIngredients)
	fridge.Post("", c.IngredientHandler.AddIngredient)
	fridge.Patch("/:id/refresh", c.IngredientHandler.RefreshExpiry)
	fridge.Delete("/:id", c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")
	catalog.Get("", c.CatalogHandler.GetCatalog)
	catalog.Get("/expiry", c.CatalogHandler.PreviewExpiry)
}

func (c *Config) Recipes() {
	c.App.Get("/api/v1/recipes", c.RecipeHandler.GetRecipes)
}

func (c *Config) Web() {
	c.App.Get("/", c.WebHandler.Index)
}
