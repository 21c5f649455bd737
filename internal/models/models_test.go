package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNeedsRestock(t *testing.T) {
	assert.True(t, (&Ingredient{Quantity: 20, Critical: 25}).NeedsRestock())
	assert.False(t, (&Ingredient{Quantity: 25, Critical: 25}).NeedsRestock())
	assert.True(t, (&RestaurantWare{Stock: 10, Critical: 20}).NeedsRestock())
	assert.False(t, (&RestaurantWare{Stock: 40, Critical: 20}).NeedsRestock())
}

func TestResolvedIngredientsSkipsDangling(t *testing.T) {
	tomato := &Ingredient{ID: uuid.New(), Name: "tomato"}
	r := &Recipe{Ingredients: []RecipeIngredient{
		{Position: 0, Ingredient: tomato},
		{Position: 1, Ingredient: nil},
	}}
	resolved := r.ResolvedIngredients()
	assert.Len(t, resolved, 1)
	assert.Equal(t, "tomato", resolved[0].Name)
}

func TestDetailURLs(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "/inventory/supplier/"+id.String(), (&Supplier{ID: id}).URL())
	assert.Equal(t, "/inventory/ingredient/"+id.String(), (&Ingredient{ID: id}).URL())
	assert.Equal(t, "/inventory/restaurantware/"+id.String(), (&RestaurantWare{ID: id}).URL())
	assert.Equal(t, "/inventory/recipe/"+id.String(), (&Recipe{ID: id}).URL())
}
