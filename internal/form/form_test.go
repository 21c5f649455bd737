package form

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierFormValidate(t *testing.T) {
	f := ParseSupplier(url.Values{
		"name":    {"  SIAGRO  "},
		"address": {"Av. Malick Sy, Dakar"},
		"tel":     {"+221 33 849 56 66"},
	})
	assert.True(t, f.Validate())
	assert.Equal(t, "SIAGRO", f.Name)

	f = ParseSupplier(url.Values{"name": {"   "}, "address": {""}, "tel": {""}})
	assert.False(t, f.Validate())
	assert.Len(t, f.Errors, 3)
}

func TestIngredientFormNumbers(t *testing.T) {
	supplier := uuid.New().String()
	f := ParseIngredient(url.Values{
		"name":     {"tomato"},
		"type":     {"fruit"},
		"cost":     {"10.5"},
		"quantity": {"100"},
		"critical": {"25"},
		"supplier": {supplier},
	})
	require.True(t, f.Validate())

	record := f.Record()
	assert.Equal(t, 10.5, record.Cost)
	assert.Equal(t, 100.0, record.Quantity)
	require.NotNil(t, record.SupplierID)
	assert.Equal(t, supplier, record.SupplierID.String())
}

func TestIngredientFormRejectsNonNumeric(t *testing.T) {
	for _, cost := range []string{"cheap", "NaN", "Inf", "-Inf", ""} {
		f := ParseIngredient(url.Values{
			"name":     {"tomato"},
			"cost":     {cost},
			"quantity": {"100"},
			"critical": {"25"},
			"supplier": {uuid.New().String()},
		})
		assert.False(t, f.Validate(), "cost %q", cost)
		require.Len(t, f.Errors, 1)
		assert.Equal(t, "cost", f.Errors[0].Field)
		assert.Equal(t, "Cost must be a number.", f.Errors[0].Message)
	}
}

func TestIngredientFormNewTypeOverrides(t *testing.T) {
	f := &IngredientForm{Type: "fruit", NewType: "meat"}
	assert.Equal(t, "meat", f.EffectiveType())

	f = &IngredientForm{Type: "fruit"}
	assert.Equal(t, "fruit", f.EffectiveType())
}

func TestIngredientFormSupplierRequired(t *testing.T) {
	values := url.Values{
		"name":     {"tomato"},
		"cost":     {"10"},
		"quantity": {"100"},
		"critical": {"25"},
	}
	f := ParseIngredient(values)
	assert.False(t, f.Validate())
	require.Len(t, f.Errors, 1)
	assert.Equal(t, "supplier", f.Errors[0].Field)

	values.Set("supplier", "not-a-uuid")
	f = ParseIngredient(values)
	assert.False(t, f.Validate())
	require.Len(t, f.Errors, 1)
	assert.Equal(t, "supplier", f.Errors[0].Field)
}

func TestRecipeFormRequiresIngredients(t *testing.T) {
	f := ParseRecipe(url.Values{
		"name":      {"Salad"},
		"prep_time": {"10 min"},
		"price":     {"24"},
	})
	assert.False(t, f.Validate())
	require.Len(t, f.Errors, 1)
	assert.Equal(t, "ingr_list", f.Errors[0].Field)
}

func TestRecipeFormKeepsSubmissionOrder(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	f := ParseRecipe(url.Values{
		"name":      {"Salad"},
		"prep_time": {"10 min"},
		"price":     {"24"},
		"ingr_list": {first.String(), second.String()},
	})
	require.True(t, f.Validate())
	ids := f.IngredientUUIDs()
	require.Len(t, ids, 2)
	assert.Equal(t, first, ids[0])
	assert.Equal(t, second, ids[1])

	assert.True(t, f.Selected(first))
	assert.False(t, f.Selected(uuid.New()))
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "10", trimFloat(10))
	assert.Equal(t, "10.5", trimFloat(10.5))
}
