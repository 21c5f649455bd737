package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a dish built from an ordered list of ingredient references.
// The references are join rows; an ingredient deleted after the recipe was
// saved leaves its row dangling and is simply skipped on display.
type Recipe struct {
	ID          uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	PrepTime    string             `gorm:"size:50;not null" json:"prep_time"`
	Price       float64            `json:"price"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// RecipeIngredient links a recipe to one ingredient at a fixed position in
// the recipe's ingredient list.
type RecipeIngredient struct {
	RecipeID     uuid.UUID   `gorm:"type:varchar(36);primaryKey" json:"recipe_id"`
	Position     int         `gorm:"primaryKey;autoIncrement:false" json:"position"`
	IngredientID uuid.UUID   `gorm:"type:varchar(36);index" json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// URL returns the path of the recipe's detail page.
func (r *Recipe) URL() string {
	return "/inventory/recipe/" + r.ID.String()
}

// ResolvedIngredients returns the ingredients that still exist, in list
// order. References to deleted ingredients are dropped.
func (r *Recipe) ResolvedIngredients() []*Ingredient {
	out := make([]*Ingredient, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		if ri.Ingredient != nil {
			out = append(out, ri.Ingredient)
		}
	}
	return out
}
