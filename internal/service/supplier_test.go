package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/database"
	"github.com/tdiagne/resto-inventory/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLite()
	require.NoError(t, err)
	return db
}

func TestSupplierCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Supplier{
		Name:    "SIAGRO",
		Address: "Av. Malick Sy, Dakar",
		Tel:     "+221 33 849 56 66",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "SIAGRO", got.Name)
}

func TestSupplierDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Supplier{Name: "SIAGRO", Address: "a", Tel: "t"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.Supplier{Name: "SIAGRO", Address: "b", Tel: "t"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSupplierGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupplierListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)
	ctx := context.Background()

	for _, name := range []string{"SENICO", "Agroline", "SIAGRO"} {
		_, err := svc.Create(ctx, &models.Supplier{Name: name, Address: "a", Tel: "t"})
		require.NoError(t, err)
	}

	suppliers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Agroline", suppliers[0].Name)
	assert.Equal(t, "SENICO", suppliers[1].Name)
	assert.Equal(t, "SIAGRO", suppliers[2].Name)
}

func TestSupplierUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)

	_, err := svc.Update(context.Background(), uuid.New(), &models.Supplier{Name: "x", Address: "a", Tel: "t"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupplierDeleteKeepsReferencingIngredients(t *testing.T) {
	db := setupTestDB(t)
	suppliers := NewSupplierService(db)
	ingredients := NewIngredientService(db)
	ctx := context.Background()

	s, err := suppliers.Create(ctx, &models.Supplier{Name: "SIAGRO", Address: "a", Tel: "t"})
	require.NoError(t, err)

	i, err := ingredients.Create(ctx, &models.Ingredient{
		Name: "tomato", Type: "fruit", Cost: 10, Quantity: 100, Critical: 25, SupplierID: &s.ID,
	})
	require.NoError(t, err)

	require.NoError(t, suppliers.Delete(ctx, s.ID))

	// The ingredient survives; its supplier resolves to nothing.
	got, err := ingredients.Get(ctx, i.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Supplier)
	require.NotNil(t, got.SupplierID)
	assert.Equal(t, s.ID, *got.SupplierID)
}
