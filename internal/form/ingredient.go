package form

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// IngredientForm holds a submitted ingredient form. Type carries the value
// picked from the existing tags; a non-empty NewType overrides it.
type IngredientForm struct {
	Name     string
	Type     string
	NewType  string
	Cost     string
	Quantity string
	Critical string
	Supplier string
	Errors   []FieldError

	cost       float64
	quantity   float64
	critical   float64
	supplierID uuid.UUID
}

// ParseIngredient reads an ingredient submission, trimming all fields.
func ParseIngredient(v url.Values) *IngredientForm {
	return &IngredientForm{
		Name:     strings.TrimSpace(v.Get("name")),
		Type:     strings.TrimSpace(v.Get("type")),
		NewType:  strings.TrimSpace(v.Get("new_type")),
		Cost:     strings.TrimSpace(v.Get("cost")),
		Quantity: strings.TrimSpace(v.Get("quantity")),
		Critical: strings.TrimSpace(v.Get("critical")),
		Supplier: strings.TrimSpace(v.Get("supplier")),
	}
}

// IngredientFormOf pre-fills a form from an existing record, for update pages.
func IngredientFormOf(i *models.Ingredient) *IngredientForm {
	f := &IngredientForm{
		Name:     i.Name,
		Type:     i.Type,
		Cost:     trimFloat(i.Cost),
		Quantity: trimFloat(i.Quantity),
		Critical: trimFloat(i.Critical),
	}
	if i.SupplierID != nil {
		f.Supplier = i.SupplierID.String()
	}
	return f
}

// Validate checks the submission and returns true when it is acceptable.
func (f *IngredientForm) Validate() bool {
	f.Errors = nil
	if f.Name == "" {
		f.AddError("name", "Name must not be empty.")
	}
	var ok bool
	if f.cost, ok = parseNumber(f.Cost); !ok {
		f.AddError("cost", "Cost must be a number.")
	}
	if f.quantity, ok = parseNumber(f.Quantity); !ok {
		f.AddError("quantity", "Quantity must be a number.")
	}
	if f.critical, ok = parseNumber(f.Critical); !ok {
		f.AddError("critical", "Critical must be a number.")
	}
	if f.Supplier == "" {
		f.AddError("supplier", "Supplier must be selected.")
	} else if id, err := uuid.Parse(f.Supplier); err != nil {
		f.AddError("supplier", "Supplier must be selected.")
	} else {
		f.supplierID = id
	}
	return len(f.Errors) == 0
}

// AddError appends a field error.
func (f *IngredientForm) AddError(field, message string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: message})
}

// EffectiveType is the type tag that will be persisted: the freshly typed
// one when present, otherwise the selected one.
func (f *IngredientForm) EffectiveType() string {
	if f.NewType != "" {
		return f.NewType
	}
	return f.Type
}

// Record builds the ingredient draft from a validated form.
func (f *IngredientForm) Record() *models.Ingredient {
	supplierID := f.supplierID
	return &models.Ingredient{
		Name:       f.Name,
		Type:       f.EffectiveType(),
		Cost:       f.cost,
		Quantity:   f.quantity,
		Critical:   f.critical,
		SupplierID: &supplierID,
	}
}
