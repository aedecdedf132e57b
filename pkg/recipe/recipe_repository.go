package recipe

import (
	"context"
	"fridge-manager/entities"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		recipes []entities.Recipe
	}
)

var defaultRecipes = []entities.Recipe{
	{Name: "Scrambled Eggs", Ingredients: []string{"Eggs", "Milk", "Salt"}},
	{Name: "Grilled Cheese Sandwich", Ingredients: []string{"Bread", "Cheese", "Butter"}},
	{Name: "Omelette", Ingredients: []string{"Eggs", "Cheese", "Vegetables"}},
}

// NewRecipeRepository serves the fixed recipe list. Recipes are display data
// only and are never matched against fridge contents.
func NewRecipeRepository() RecipeRepository {
	return &recipeRepository{recipes: defaultRecipes}
}

func (r *recipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	out := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		ingredients := make([]string, len(recipe.Ingredients))
		copy(ingredients, recipe.Ingredients)
		out = append(out, &entities.Recipe{Name: recipe.Name, Ingredients: ingredients})
	}
	return out, nil
}
