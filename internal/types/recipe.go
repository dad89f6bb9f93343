package types

import "github.com/pageza/recipebook/backend/internal/models"

// RecipeInfo is the full recipe shape returned by the provider's information endpoint
type RecipeInfo struct {
	ID                   int64               `json:"id"`
	Title                string              `json:"title"`
	Image                string              `json:"image"`
	ImageType            string              `json:"imageType,omitempty"`
	Servings             int                 `json:"servings"`
	ReadyInMinutes       int                 `json:"readyInMinutes"`
	Vegetarian           bool                `json:"vegetarian"`
	Vegan                bool                `json:"vegan"`
	GlutenFree           bool                `json:"glutenFree"`
	DairyFree            bool                `json:"dairyFree"`
	VeryHealthy          bool                `json:"veryHealthy"`
	Cheap                bool                `json:"cheap"`
	AggregateLikes       int                 `json:"aggregateLikes"`
	HealthScore          float64             `json:"healthScore"`
	SourceName           string              `json:"sourceName"`
	SourceURL            string              `json:"sourceUrl"`
	Summary              string              `json:"summary"`
	Cuisines             []string            `json:"cuisines"`
	DishTypes            []string            `json:"dishTypes"`
	Diets                []string            `json:"diets"`
	Instructions         string              `json:"instructions"`
	ExtendedIngredients  models.Ingredients  `json:"extendedIngredients"`
	AnalyzedInstructions models.Instructions `json:"analyzedInstructions"`
}

// RecipeSummary is the reduced projection used for recipe previews
type RecipeSummary struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Image          string `json:"image"`
	AggregateLikes int    `json:"aggregateLikes"`
	Vegan          bool   `json:"vegan"`
	Vegetarian     bool   `json:"vegetarian"`
	GlutenFree     bool   `json:"glutenFree"`
}

// RecipeDetail is the fixed projection returned by the full details route
type RecipeDetail struct {
	RecipeSummary
	ExtendedIngredients  models.Ingredients  `json:"extendedIngredients"`
	AnalyzedInstructions models.Instructions `json:"analyzedInstructions"`
	SourceName           string              `json:"sourceName"`
	SourceURL            string              `json:"sourceUrl"`
}

// SearchParams holds the filters of a provider recipe search
type SearchParams struct {
	Query        string
	Cuisine      string
	Diet         string
	Intolerances string
	Number       int
}

// ToSummary projects a RecipeInfo to a RecipeSummary
func (r *RecipeInfo) ToSummary() RecipeSummary {
	return RecipeSummary{
		ID:             r.ID,
		Title:          r.Title,
		ReadyInMinutes: r.ReadyInMinutes,
		Image:          r.Image,
		AggregateLikes: r.AggregateLikes,
		Vegan:          r.Vegan,
		Vegetarian:     r.Vegetarian,
		GlutenFree:     r.GlutenFree,
	}
}

// Detail projects a RecipeInfo to a RecipeDetail
func (r *RecipeInfo) Detail() RecipeDetail {
	return RecipeDetail{
		RecipeSummary:        r.ToSummary(),
		ExtendedIngredients:  nonNilIngredients(r.ExtendedIngredients),
		AnalyzedInstructions: nonNilInstructions(r.AnalyzedInstructions),
		SourceName:           r.SourceName,
		SourceURL:            r.SourceURL,
	}
}

// RecipeInfoFromUserRecipe converts a persisted user recipe to the provider shape
func RecipeInfoFromUserRecipe(r *models.UserRecipe) *RecipeInfo {
	info := &RecipeInfo{
		ID:                   int64(r.ID),
		Title:                r.Title,
		Image:                r.Image,
		ReadyInMinutes:       r.ReadyInMinutes,
		Vegetarian:           r.Vegetarian,
		Vegan:                r.Vegan,
		GlutenFree:           r.GlutenFree,
		AggregateLikes:       r.AggregateLikes,
		ExtendedIngredients:  nonNilIngredients(r.ExtendedIngredients),
		AnalyzedInstructions: nonNilInstructions(r.AnalyzedInstructions),
	}
	if r.SourceName != nil {
		info.SourceName = *r.SourceName
	}
	if r.SourceURL != nil {
		info.SourceURL = *r.SourceURL
	}
	return info
}

func nonNilIngredients(in models.Ingredients) models.Ingredients {
	if in == nil {
		return models.Ingredients{}
	}
	return in
}

func nonNilInstructions(in models.Instructions) models.Instructions {
	if in == nil {
		return models.Instructions{}
	}
	return in
}
