package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"recipe-catalog/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// nanMarker is the literal the source dataset uses for unknown values.
// Only this exact string is stripped from nutrients; descriptive values
// like "389 kcal" are stored untouched.
const nanMarker = "NaN"

type (
	// RecipeLoader performs the one-shot bulk ingest. It runs before the
	// server accepts requests and is skipped entirely when the table
	// already holds rows.
	RecipeLoader interface {
		LoadFromFile(ctx context.Context, path string) error
	}

	recipeLoader struct {
		recipeRepository RecipeRepository
	}

	// rawRecipe tolerates the dataset's loose typing: numeric fields may
	// arrive as JSON numbers, numeric strings, or the "NaN" marker.
	rawRecipe struct {
		Cuisine     *string         `json:"cuisine"`
		Title       *string         `json:"title"`
		Rating      json.RawMessage `json:"rating"`
		PrepTime    json.RawMessage `json:"prep_time"`
		CookTime    json.RawMessage `json:"cook_time"`
		TotalTime   json.RawMessage `json:"total_time"`
		Description *string         `json:"description"`
		Nutrients   map[string]any  `json:"nutrients"`
		Serves      *string         `json:"serves"`
	}
)

func NewRecipeLoader(recipeRepository RecipeRepository) RecipeLoader {
	return &recipeLoader{recipeRepository: recipeRepository}
}

func (l *recipeLoader) LoadFromFile(ctx context.Context, path string) error {
	count, err := l.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return fmt.Errorf("counting existing recipes: %w", err)
	}
	if count > 0 {
		log.Printf("ingestion skipped: recipes table already holds %d rows", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", path, err)
	}

	// Top level is a mapping from arbitrary key to recipe object; the
	// keys themselves carry no meaning.
	var records map[string]rawRecipe
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	runID := uuid.New()
	log.Printf("ingestion run %s: %d records in %s", runID, len(records), path)

	inserted, skipped := 0, 0
	for _, raw := range records {
		recipe := sanitizeRecipe(raw)
		if err := l.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
			title := ""
			if recipe.Title != nil {
				title = *recipe.Title
			}
			log.Printf("ingestion run %s: failed to insert recipe %q: %v", runID, title, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("ingestion run %s complete: %d inserted, %d skipped", runID, inserted, skipped)
	return nil
}

func sanitizeRecipe(raw rawRecipe) *entities.Recipe {
	return &entities.Recipe{
		Cuisine:     raw.Cuisine,
		Title:       raw.Title,
		Rating:      parseNullableFloat(raw.Rating),
		PrepTime:    parseNullableMinutes(raw.PrepTime),
		CookTime:    parseNullableMinutes(raw.CookTime),
		TotalTime:   parseNullableMinutes(raw.TotalTime),
		Description: raw.Description,
		Nutrients:   sanitizeNutrients(raw.Nutrients),
		Serves:      raw.Serves,
	}
}

// parseNullableFloat accepts a JSON number or a numeric string and returns
// nil for anything else, including the "NaN" marker.
func parseNullableFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == nanMarker {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func parseNullableMinutes(raw json.RawMessage) *int {
	f := parseNullableFloat(raw)
	if f == nil {
		return nil
	}
	m := int(*f)
	return &m
}

// sanitizeNutrients drops entries whose value is exactly the "NaN" marker
// and keeps everything else as-is. A row without nutrients stores null.
func sanitizeNutrients(nutrients map[string]any) datatypes.JSONMap {
	if nutrients == nil {
		return nil
	}
	cleaned := datatypes.JSONMap{}
	for key, value := range nutrients {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == nanMarker {
			continue
		}
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}
