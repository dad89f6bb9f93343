package service_test

import (
	"strconv"
	"testing"

	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, db *database.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Country:   "Israel",
		Password:  "hash",
		Email:     username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func sampleIngredients() models.Ingredients {
	return models.Ingredients{
		{ID: 20420, Aisle: "Pasta and Rice", Name: "spaghetti", Original: "400g spaghetti", Amount: 400, Unit: "g", Meta: []string{}},
		{ID: 11215, Aisle: "Produce", Name: "garlic", Original: "2 cloves garlic, minced", Amount: 2, Unit: "cloves", Meta: []string{"minced"}},
	}
}

func sampleInstructions() models.Instructions {
	return models.Instructions{
		{
			Steps: []models.Step{
				{Number: 1, Step: "Boil the pasta.", Ingredients: []models.StepItem{{ID: 20420, Name: "spaghetti"}}, Equipment: []models.StepItem{{ID: 404784, Name: "pot"}}, Length: &models.StepLength{Number: 10, Unit: "minutes"}},
				{Number: 2, Step: "Fry the garlic and toss.", Ingredients: []models.StepItem{{ID: 11215, Name: "garlic"}}, Equipment: []models.StepItem{}},
			},
		},
	}
}
