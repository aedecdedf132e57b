package migration

import (
	"fridge-manager/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Errorf("Error migrating ingredient database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
