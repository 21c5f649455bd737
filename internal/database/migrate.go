package database

import (
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// Migrate brings the schema up to date for all inventory entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Supplier{},
		&models.Ingredient{},
		&models.RestaurantWare{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	)
}
