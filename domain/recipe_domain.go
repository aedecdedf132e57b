package domain

var (
	MessageSuccessGetRecipes = "success get recipes"
	MessageFailedGetRecipes  = "failed to get recipes"
)

type (
	RecipeResponse struct {
		Name        string   `json:"name"`
		Ingredients []string `json:"ingredients"`
	}
)
