package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIngredients() Ingredients {
	return Ingredients{
		{ID: 20420, Aisle: "Pasta and Rice", Name: "spaghetti", NameClean: "spaghetti", Original: "400g spaghetti", OriginalName: "spaghetti", Amount: 400, Unit: "g", Meta: []string{}},
		{ID: 11215, Aisle: "Produce", Name: "garlic", Consistency: "SOLID", Original: "2 cloves garlic, minced", Amount: 2, Unit: "cloves", Meta: []string{"minced"}},
	}
}

func sampleInstructions() Instructions {
	return Instructions{
		{
			Name: "",
			Steps: []Step{
				{Number: 1, Step: "Boil the pasta.", Ingredients: []StepItem{{ID: 20420, Name: "spaghetti"}}, Equipment: []StepItem{{ID: 404784, Name: "pot"}}, Length: &StepLength{Number: 10, Unit: "minutes"}},
				{Number: 2, Step: "Fry the garlic.", Ingredients: []StepItem{{ID: 11215, Name: "garlic"}}, Equipment: []StepItem{}},
			},
		},
	}
}

func TestIngredientsRoundTrip(t *testing.T) {
	in := sampleIngredients()

	value, err := in.Value()
	require.NoError(t, err)

	var out Ingredients
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)

	// Drivers may hand back []byte instead of string
	var fromBytes Ingredients
	require.NoError(t, fromBytes.Scan([]byte(value.(string))))
	assert.Equal(t, in, fromBytes)
}

func TestInstructionsRoundTrip(t *testing.T) {
	in := sampleInstructions()

	value, err := in.Value()
	require.NoError(t, err)

	var out Instructions
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
	assert.Equal(t, 1, out[0].Steps[0].Number)
	assert.Equal(t, 2, out[0].Steps[1].Number)
}

func TestEmptyStructuredText(t *testing.T) {
	value, err := Ingredients(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	tests := []struct {
		name  string
		value interface{}
	}{
		{name: "null", value: nil},
		{name: "empty string", value: ""},
		{name: "empty array", value: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ingredients Ingredients
			require.NoError(t, ingredients.Scan(tt.value))
			assert.NotNil(t, ingredients)
			assert.Empty(t, ingredients)

			var instructions Instructions
			require.NoError(t, instructions.Scan(tt.value))
			assert.NotNil(t, instructions)
			assert.Empty(t, instructions)
		})
	}
}

func TestScanRejectsInvalidPayload(t *testing.T) {
	var ingredients Ingredients
	assert.Error(t, ingredients.Scan("not json"))
	assert.Error(t, ingredients.Scan(42))
}

const providerIngredients = `[{"id":1123,"aisle":"Milk, Eggs, Other Dairy","image":"egg.png","consistency":"SOLID",
	"name":"egg","nameClean":"egg","original":"2 large eggs","originalName":"large eggs","amount":2,"unit":"large",
	"meta":[],"unitShort":"","unitLong":"larges",
	"measures":{"us":{"amount":2,"unitShort":"large","unitLong":"larges"},"metric":{"amount":2,"unitShort":"large","unitLong":"larges"}}}]`

const providerInstructions = `[{"name":"","steps":[{"number":1,"step":"Preheat the oven.",
	"ingredients":[],
	"equipment":[{"id":404784,"name":"oven","localizedName":"oven","image":"oven.jpg","temperature":{"number":200,"unit":"Celsius"}}],
	"length":{"number":10,"unit":"minutes"}}]}]`

func TestIngredientsKeepUndeclaredKeys(t *testing.T) {
	var in Ingredients
	require.NoError(t, json.Unmarshal([]byte(providerIngredients), &in))
	require.Len(t, in, 1)
	assert.Equal(t, "egg", in[0].Name)
	assert.Contains(t, in[0].Extra, "measures")

	value, err := in.Value()
	require.NoError(t, err)
	assert.JSONEq(t, providerIngredients, value.(string))

	var out Ingredients
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestInstructionsKeepUndeclaredKeys(t *testing.T) {
	var in Instructions
	require.NoError(t, json.Unmarshal([]byte(providerInstructions), &in))
	require.Len(t, in[0].Steps, 1)
	oven := in[0].Steps[0].Equipment[0]
	assert.Equal(t, "oven", oven.Name)
	assert.JSONEq(t, `{"number":200,"unit":"Celsius"}`, string(oven.Extra["temperature"]))

	value, err := in.Value()
	require.NoError(t, err)
	assert.JSONEq(t, providerInstructions, value.(string))

	var out Instructions
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestStructuredTextAcceptsPlainEntries(t *testing.T) {
	var ingredients Ingredients
	require.NoError(t, json.Unmarshal([]byte(`["2 eggs", "flour"]`), &ingredients))
	require.Len(t, ingredients, 2)

	value, err := ingredients.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["2 eggs","flour"]`, value.(string))

	var out Ingredients
	require.NoError(t, out.Scan(value))
	assert.Equal(t, ingredients, out)

	var instructions Instructions
	require.NoError(t, instructions.Scan(`["Mix everything.", {"name":"Bake","steps":[]}]`))
	require.Len(t, instructions, 2)
	assert.Equal(t, "Bake", instructions[1].Name)
	value, err = instructions.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["Mix everything.",{"name":"Bake","steps":[]}]`, value.(string))
}
