package recipe

import (
	"context"
	"fridge-manager/domain"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, domain.RecipeResponse{
			Name:        recipe.Name,
			Ingredients: recipe.Ingredients,
		})
	}
	return response, nil
}
