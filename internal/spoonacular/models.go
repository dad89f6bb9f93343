package spoonacular

import "github.com/pageza/recipebook/backend/internal/types"

type searchHit struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type searchResponse struct {
	Results      []searchHit `json:"results"`
	Offset       int         `json:"offset"`
	Number       int         `json:"number"`
	TotalResults int         `json:"totalResults"`
}

type randomResponse struct {
	Recipes []types.RecipeInfo `json:"recipes"`
}
