package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recipe-catalog/cmd/config"
	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/recipe"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer config.CloseDB(db)

	// Schema and ingest problems are logged but do not stop the server;
	// it will serve whatever the table holds.
	if err := migration.Migrate(db); err != nil {
		log.Printf("migration error: %v", err)
	}

	loader := recipe.NewRecipeLoader(recipe.NewRecipeRepository(db))
	if err := loader.LoadFromFile(context.Background(), utils.GetConfig("DATASET_PATH")); err != nil {
		log.Printf("ingestion error: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	port := utils.GetConfig("SERVER_PORT")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
