package config

import (
	"errors"
	"fridge-manager/domain"
	"fridge-manager/internal/api/handlers"
	"fridge-manager/internal/api/presenters"
	"fridge-manager/internal/api/routes"
	"fridge-manager/internal/middleware"
	"fridge-manager/internal/utils"
	"fridge-manager/internal/utils/mailing"
	"fridge-manager/pkg/ingredient"
	"fridge-manager/pkg/recipe"
	"fridge-manager/pkg/reminder"
	"fridge-manager/pkg/session"
	"fridge-manager/web"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires the service. A nil db keeps every session in memory.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		Views:             web.NewEngine(),
		ErrorHandler:      errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetLocation().String(),
		Output:     file,
	}))

	rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil || rateLimit < 1 {
		log.Warnf("invalid RATE_LIMIT_MAX %q, using 20", utils.GetConfig("RATE_LIMIT_MAX"))
		rateLimit = 20
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit,
		Expiration: 1 * time.Second,
	}))

	// Repository
	var ingredientRepository ingredient.IngredientRepository
	if db != nil {
		ingredientRepository = ingredient.NewIngredientRepository(db)
		log.Info("storing ingredients in postgres")
	} else {
		ingredientRepository = ingredient.NewMemoryRepository()
		log.Info("storing ingredients in memory")
	}
	recipeRepository := recipe.NewRecipeRepository()

	// Service
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	ingredientService := ingredient.NewIngredientService(ingredientRepository, utils.GetLocation(), time.Now)
	recipeService := recipe.NewRecipeService(recipeRepository)
	reminderService := reminder.NewReminderService(ingredientService, mailer)
	sessionManager := session.NewSessionManager(ingredientService)

	// Handler
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	draftHandler := handlers.NewDraftHandler(sessionManager, ingredientService, validator)
	catalogHandler := handlers.NewCatalogHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	reminderHandler := handlers.NewReminderHandler(reminderService, validator)
	sessionHandler := handlers.NewSessionHandler(sessionManager)
	webHandler := handlers.NewWebHandler(recipeService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		IngredientHandler: ingredientHandler,
		DraftHandler:      draftHandler,
		CatalogHandler:    catalogHandler,
		RecipeHandler:     recipeHandler,
		ReminderHandler:   reminderHandler,
		SessionHandler:    sessionHandler,
		WebHandler:        webHandler,
		Middleware:        middlewares,
		SessionManager:    sessionManager,
	}
	routesConfig.Setup()
	return app, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
}
