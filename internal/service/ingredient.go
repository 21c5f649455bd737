package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// IngredientService handles ingredient store operations
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List returns all ingredients ordered by name ascending, with each
// supplier reference resolved. A deleted supplier resolves to nil.
func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Preload("Supplier").Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get retrieves an ingredient by ID with its supplier resolved
func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).Preload("Supplier").First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// Create persists a new ingredient
func (s *IngredientService) Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Update overwrites the ingredient at the given id.
func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":        ingredient.Name,
		"type":        ingredient.Type,
		"cost":        ingredient.Cost,
		"quantity":    ingredient.Quantity,
		"critical":    ingredient.Critical,
		"supplier_id": ingredient.SupplierID,
	}
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the ingredient at the given id. Recipes that still
// reference it keep their dangling join rows.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", id).Error
}

// DistinctTypes returns the type tags currently in use, one entry per tag.
func (s *IngredientService) DistinctTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Distinct("type").Where("type <> ''").Order("type asc").
		Pluck("type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Count returns the number of ingredients.
func (s *IngredientService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
