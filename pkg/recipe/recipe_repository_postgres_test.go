package recipe

import (
	"context"
	"os"
	"testing"

	"recipe-catalog/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests need a real Postgres; set TEST_DATABASE_URL to run them.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))
	db.Exec("DELETE FROM recipes")

	return db
}

func seedRecipe(t *testing.T, repo RecipeRepository, title string, rating *float64, totalTime *int, nutrients datatypes.JSONMap) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		Title:     &title,
		Rating:    rating,
		TotalTime: totalTime,
		Nutrients: nutrients,
	}
	require.NoError(t, repo.CreateRecipe(context.Background(), r))
	return r
}

func TestSearchRecipesTitleAndRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, repo, "Sweet Potato Pie", ptr(4.8), nil, nil)
	seedRecipe(t, repo, "Apple Pie", ptr(4.0), nil, nil)
	seedRecipe(t, repo, "Beef Stew", ptr(4.9), nil, nil)

	recipes, total, err := repo.SearchRecipes(ctx, SearchFilter{Title: "pie", Rating: ">=4.5"}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Sweet Potato Pie", *recipes[0].Title)
}

func TestSearchRecipesCaloriesFromNutrients(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, repo, "Light Salad", nil, nil, datatypes.JSONMap{"calories": "389 kcal"})
	seedRecipe(t, repo, "Heavy Burger", nil, nil, datatypes.JSONMap{"calories": "450 kcal"})
	seedRecipe(t, repo, "No Label", nil, nil, nil)

	recipes, total, err := repo.SearchRecipes(ctx, SearchFilter{Calories: "<=400"}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Light Salad", *recipes[0].Title)
}

func TestGetRecipesOrderingAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, repo, "A", ptr(4.0), nil, nil)
	seedRecipe(t, repo, "B", ptr(5.0), nil, nil)
	seedRecipe(t, repo, "C", nil, nil, nil) // unrated sorts last
	seedRecipe(t, repo, "D", ptr(5.0), nil, nil)
	seedRecipe(t, repo, "E", ptr(3.0), nil, nil)

	first, total, err := repo.GetRecipes(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, first, 3)

	second, _, err := repo.GetRecipes(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Rating descending, equal ratings broken by ascending id, nulls last.
	assert.Equal(t, "B", *first[0].Title)
	assert.Equal(t, "D", *first[1].Title)
	assert.Equal(t, "A", *first[2].Title)
	assert.Equal(t, "E", *second[0].Title)
	assert.Equal(t, "C", *second[1].Title)

	// No row appears on two pages.
	seen := map[uint]bool{}
	for _, r := range append(first, second...) {
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}

func TestSearchRecipesTotalReflectsFilteredSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, repo, "Quick Soup", nil, ptr(20), nil)
	seedRecipe(t, repo, "Slow Roast", nil, ptr(240), nil)
	seedRecipe(t, repo, "Weeknight Pasta", nil, ptr(30), nil)

	_, total, err := repo.SearchRecipes(ctx, SearchFilter{TotalTime: "<=30"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	count, err := repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestIngestionSkipsPopulatedTable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, repo, "Existing", nil, nil, nil)

	loader := NewRecipeLoader(repo)
	require.NoError(t, loader.LoadFromFile(ctx, "does-not-matter.json"))

	count, err := repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
