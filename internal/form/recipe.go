package form

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// RecipeForm holds a submitted recipe form. IngredientIDs is the ordered
// multi-selection from the form; at least one must be chosen.
type RecipeForm struct {
	Name          string
	PrepTime      string
	Price         string
	IngredientIDs []string
	Errors        []FieldError

	price         float64
	ingredientIDs []uuid.UUID
}

// ParseRecipe reads a recipe submission, trimming scalar fields.
func ParseRecipe(v url.Values) *RecipeForm {
	return &RecipeForm{
		Name:          strings.TrimSpace(v.Get("name")),
		PrepTime:      strings.TrimSpace(v.Get("prep_time")),
		Price:         strings.TrimSpace(v.Get("price")),
		IngredientIDs: v["ingr_list"],
	}
}

// RecipeFormOf pre-fills a form from an existing record, for update pages.
func RecipeFormOf(r *models.Recipe) *RecipeForm {
	f := &RecipeForm{
		Name:     r.Name,
		PrepTime: r.PrepTime,
		Price:    trimFloat(r.Price),
	}
	for _, ri := range r.Ingredients {
		f.IngredientIDs = append(f.IngredientIDs, ri.IngredientID.String())
	}
	return f
}

// Validate checks the submission and returns true when it is acceptable.
func (f *RecipeForm) Validate() bool {
	f.Errors = nil
	f.ingredientIDs = nil
	if f.Name == "" {
		f.AddError("name", "Name must not be empty.")
	}
	if f.PrepTime == "" {
		f.AddError("prep_time", "Preparation time must not be empty.")
	}
	var ok bool
	if f.price, ok = parseNumber(f.Price); !ok {
		f.AddError("price", "Price must be a number.")
	}
	for _, raw := range f.IngredientIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		f.ingredientIDs = append(f.ingredientIDs, id)
	}
	if len(f.ingredientIDs) == 0 {
		f.AddError("ingr_list", "At least one ingredient must be selected.")
	}
	return len(f.Errors) == 0
}

// AddError appends a field error.
func (f *RecipeForm) AddError(field, message string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: message})
}

// Selected reports whether the given ingredient id is part of the
// submission, for re-rendering the multi-select.
func (f *RecipeForm) Selected(id uuid.UUID) bool {
	s := id.String()
	for _, raw := range f.IngredientIDs {
		if strings.TrimSpace(raw) == s {
			return true
		}
	}
	return false
}

// Record builds the recipe draft from a validated form.
func (f *RecipeForm) Record() *models.Recipe {
	return &models.Recipe{
		Name:     f.Name,
		PrepTime: f.PrepTime,
		Price:    f.price,
	}
}

// IngredientUUIDs returns the parsed ingredient ids in submission order.
func (f *RecipeForm) IngredientUUIDs() []uuid.UUID {
	return f.ingredientIDs
}
