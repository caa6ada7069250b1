package recipe

import (
	"context"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, page, limit int) (domain.PagedRecipesResponse, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) (domain.PagedRecipesResponse, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) ListRecipes(ctx context.Context, page, limit int) (domain.PagedRecipesResponse, error) {
	page, limit = NormalizePagination(page, limit)

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.PagedRecipesResponse{}, err
	}

	return pagedResponse(page, limit, count, recipes), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) (domain.PagedRecipesResponse, error) {
	page, limit := NormalizePagination(req.Page, req.Limit)

	filter := SearchFilter{
		Title:     req.Title,
		Cuisine:   req.Cuisine,
		Rating:    req.Rating,
		TotalTime: req.TotalTime,
		Calories:  req.Calories,
	}

	recipes, count, err := s.recipeRepository.SearchRecipes(ctx, filter, page, limit)
	if err != nil {
		return domain.PagedRecipesResponse{}, err
	}

	return pagedResponse(page, limit, count, recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func pagedResponse(page, limit int, total int64, recipes []*entities.Recipe) domain.PagedRecipesResponse {
	// data is always a JSON array, never null, even past the last page.
	data := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		data = append(data, toRecipeResponse(r))
	}
	return domain.PagedRecipesResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  data,
	}
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          r.ID,
		Cuisine:     r.Cuisine,
		Title:       r.Title,
		Rating:      r.Rating,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime,
		Description: r.Description,
		Nutrients:   r.Nutrients,
		Serves:      r.Serves,
		CreatedAt:   r.CreatedAt,
	}
}
