package form

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// WareForm holds a submitted restaurant-ware form. Mirrors IngredientForm
// with stock in place of quantity.
type WareForm struct {
	Name     string
	Type     string
	NewType  string
	Cost     string
	Stock    string
	Critical string
	Supplier string
	Errors   []FieldError

	cost       float64
	stock      float64
	critical   float64
	supplierID uuid.UUID
}

// ParseWare reads a ware submission, trimming all fields.
func ParseWare(v url.Values) *WareForm {
	return &WareForm{
		Name:     strings.TrimSpace(v.Get("name")),
		Type:     strings.TrimSpace(v.Get("type")),
		NewType:  strings.TrimSpace(v.Get("new_type")),
		Cost:     strings.TrimSpace(v.Get("cost")),
		Stock:    strings.TrimSpace(v.Get("stock")),
		Critical: strings.TrimSpace(v.Get("critical")),
		Supplier: strings.TrimSpace(v.Get("supplier")),
	}
}

// WareFormOf pre-fills a form from an existing record, for update pages.
func WareFormOf(w *models.RestaurantWare) *WareForm {
	f := &WareForm{
		Name:     w.Name,
		Type:     w.Type,
		Cost:     trimFloat(w.Cost),
		Stock:    trimFloat(w.Stock),
		Critical: trimFloat(w.Critical),
	}
	if w.SupplierID != nil {
		f.Supplier = w.SupplierID.String()
	}
	return f
}

// Validate checks the submission and returns true when it is acceptable.
func (f *WareForm) Validate() bool {
	f.Errors = nil
	if f.Name == "" {
		f.AddError("name", "Name must not be empty.")
	}
	var ok bool
	if f.cost, ok = parseNumber(f.Cost); !ok {
		f.AddError("cost", "Cost must be a number.")
	}
	if f.stock, ok = parseNumber(f.Stock); !ok {
		f.AddError("stock", "Stock must be a number.")
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
func (f *WareForm) AddError(field, message string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: message})
}

// EffectiveType is the type tag that will be persisted: the freshly typed
// one when present, otherwise the selected one.
func (f *WareForm) EffectiveType() string {
	if f.NewType != "" {
		return f.NewType
	}
	return f.Type
}

// Record builds the ware draft from a validated form.
func (f *WareForm) Record() *models.RestaurantWare {
	supplierID := f.supplierID
	return &models.RestaurantWare{
		Name:       f.Name,
		Type:       f.EffectiveType(),
		Cost:       f.cost,
		Stock:      f.stock,
		Critical:   f.critical,
		SupplierID: &supplierID,
	}
}
