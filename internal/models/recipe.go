package models

import "time"

// RecipeFields are the display columns shared by user recipes and favorite snapshots
type RecipeFields struct {
	Title                string       `gorm:"size:255;not null" json:"title"`
	Image                string       `gorm:"size:512" json:"image"`
	ReadyInMinutes       int          `gorm:"column:readyInMinutes" json:"readyInMinutes"`
	Vegetarian           bool         `gorm:"column:vegetarian" json:"vegetarian"`
	Vegan                bool         `gorm:"column:vegan" json:"vegan"`
	GlutenFree           bool         `gorm:"column:glutenFree" json:"glutenFree"`
	ExtendedIngredients  Ingredients  `gorm:"column:extendedIngredients;type:text" json:"extendedIngredients"`
	AnalyzedInstructions Instructions `gorm:"column:analyzedInstructions;type:text" json:"analyzedInstructions"`
	AggregateLikes       int          `gorm:"column:aggregateLikes;not null;default:0" json:"aggregateLikes"`
	SourceName           *string      `gorm:"column:sourceName;size:255" json:"sourceName"`
	SourceURL            *string      `gorm:"column:sourceUrl;size:512" json:"sourceUrl"`
}

// UserRecipe is a recipe authored by a user
type UserRecipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RecipeFields `gorm:"embedded"`
	CreatedAt    time.Time `json:"created_at"`
}

func (UserRecipe) TableName() string {
	return "UserRecipes"
}

// FavoriteRecipe is a snapshot of a provider recipe taken when a user favorited it
type FavoriteRecipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RecipeID     int64     `gorm:"column:recipe_id;not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	RecipeFields `gorm:"embedded"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FavoriteRecipe) TableName() string {
	return "FavoriteRecipes"
}
