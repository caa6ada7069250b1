package migration

import (
	"fmt"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

// Migrate creates the recipes table if missing and the supporting indexes.
// Safe to run at every process start.
func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"pg_trgm\";")

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("error migrating recipe table: %w", err)
	}

	// Trigram index backs the case-insensitive substring search on title.
	if err := db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_recipes_title_trgm ON recipes USING gin (title gin_trgm_ops);",
	).Error; err != nil {
		return fmt.Errorf("error creating title search index: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
