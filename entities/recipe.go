package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe is append-only: rows are created by the ingestion loader and never
// updated or deleted afterwards.
type Recipe struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Cuisine     *string           `json:"cuisine"`
	Title       *string           `json:"title"`
	Rating      *float64          `json:"rating"`
	PrepTime    *int              `json:"prep_time"`
	CookTime    *int              `json:"cook_time"`
	TotalTime   *int              `json:"total_time"`
	Description *string           `gorm:"type:text" json:"description"`
	Nutrients   datatypes.JSONMap `gorm:"type:jsonb" json:"nutrients"`
	Serves      *string           `json:"serves"`
	CreatedAt   time.Time         `gorm:"type:timestamp" json:"created_at"`
}
