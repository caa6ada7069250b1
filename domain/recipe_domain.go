package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageRecipeNotFound        = "recipe not found"

	ErrRecipeNotFound = errors.New("recipe not found")
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

type (
	// SearchRecipesRequest carries the raw filter strings from the query
	// string. Numeric filters may be prefixed with >=, <=, >, < or =;
	// values that fail to parse are dropped from the predicate rather
	// than rejected.
	SearchRecipesRequest struct {
		Title     string `json:"title"`
		Cuisine   string `json:"cuisine"`
		Rating    string `json:"rating"`
		TotalTime string `json:"total_time"`
		Calories  string `json:"calories"`
		Page      int    `json:"page"`
		Limit     int    `json:"limit"`
	}

	RecipeResponse struct {
		ID          uint           `json:"id"`
		Cuisine     *string        `json:"cuisine"`
		Title       *string        `json:"title"`
		Rating      *float64       `json:"rating"`
		PrepTime    *int           `json:"prep_time"`
		CookTime    *int           `json:"cook_time"`
		TotalTime   *int           `json:"total_time"`
		Description *string        `json:"description"`
		Nutrients   map[string]any `json:"nutrients"`
		Serves      *string        `json:"serves"`
		CreatedAt   time.Time      `json:"created_at"`
	}

	PagedRecipesResponse struct {
		Page  int              `json:"page"`
		Limit int              `json:"limit"`
		Total int64            `json:"total"`
		Data  []RecipeResponse `json:"data"`
	}

	HealthResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
)
