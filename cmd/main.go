package main

import (
	"fridge-manager/cmd/config"
	migration "fridge-manager/cmd/database/migrate"
	"fridge-manager/internal/utils"
	"os"
	"slices"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	var db *gorm.DB
	if utils.GetConfig("STORAGE_DRIVER") == "postgres" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		if slices.Contains(os.Args[1:], "--migrate") {
			if err := migration.Migrate(db); err != nil {
				log.Fatalf("migrate database: %v", err)
			}
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("build app: %v", err)
	}

	log.Fatal(app.Listen(":" + utils.GetConfig("APP_PORT")))
}
