package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiagne/resto-inventory/internal/models"
)

func TestIngredientDistinctTypes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	for _, i := range []*models.Ingredient{
		{Name: "tomato", Type: "fruit", Cost: 10, Quantity: 100, Critical: 25},
		{Name: "lettuce", Type: "fruit", Cost: 12, Quantity: 100, Critical: 25},
		{Name: "beef", Type: "meat", Cost: 6, Quantity: 100, Critical: 25},
		{Name: "salt", Type: "", Cost: 1, Quantity: 100, Critical: 25},
	} {
		_, err := svc.Create(ctx, i)
		require.NoError(t, err)
	}

	types, err := svc.DistinctTypes(ctx)
	require.NoError(t, err)
	// Empty tags are not offered; repeats collapse to one entry.
	assert.ElementsMatch(t, []string{"fruit", "meat"}, types)
}

func TestIngredientUpdateChangesSupplier(t *testing.T) {
	db := setupTestDB(t)
	ingredients := NewIngredientService(db)
	suppliers := NewSupplierService(db)
	ctx := context.Background()

	first, err := suppliers.Create(ctx, &models.Supplier{Name: "SIAGRO", Address: "a", Tel: "t"})
	require.NoError(t, err)
	second, err := suppliers.Create(ctx, &models.Supplier{Name: "Agroline", Address: "a", Tel: "t"})
	require.NoError(t, err)

	i, err := ingredients.Create(ctx, &models.Ingredient{
		Name: "tomato", Type: "fruit", Cost: 10, Quantity: 100, Critical: 25, SupplierID: &first.ID,
	})
	require.NoError(t, err)

	updated, err := ingredients.Update(ctx, i.ID, &models.Ingredient{
		Name: "tomato", Type: "fruit", Cost: 10, Quantity: 100, Critical: 25, SupplierID: &second.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Supplier)
	assert.Equal(t, "Agroline", updated.Supplier.Name)
}

func TestIngredientCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = svc.Create(ctx, &models.Ingredient{Name: "tomato", Cost: 10, Quantity: 100, Critical: 25})
	require.NoError(t, err)

	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
