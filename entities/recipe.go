package entities

type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}
