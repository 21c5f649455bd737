package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// RecipeService handles recipe store operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// List returns all recipes ordered by name ascending.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves a recipe by ID with its ingredient list resolved in stored
// order. A join row whose ingredient has been deleted resolves to a nil
// Ingredient and is skipped on display.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Ingredients", orderedByPosition).
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create persists a new recipe along with its ingredient join rows.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe, ingredientIDs []uuid.UUID) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, ingredientIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID)
}

// Update overwrites the recipe at the given id, replacing its ingredient list.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, recipe *models.Recipe, ingredientIDs []uuid.UUID) (*models.Recipe, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":      recipe.Name,
			"prep_time": recipe.PrepTime,
			"price":     recipe.Price,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, id, ingredientIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the recipe at the given id together with its join rows.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// Count returns the number of recipes.
func (s *RecipeService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func replaceIngredients(tx *gorm.DB, recipeID uuid.UUID, ingredientIDs []uuid.UUID) error {
	if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", recipeID).Error; err != nil {
		return err
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	rows := make([]models.RecipeIngredient, 0, len(ingredientIDs))
	for i, ingrID := range ingredientIDs {
		rows = append(rows, models.RecipeIngredient{
			RecipeID:     recipeID,
			Position:     i,
			IngredientID: ingrID,
		})
	}
	return tx.Create(&rows).Error
}
