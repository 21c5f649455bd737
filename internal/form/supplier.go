package form

import (
	"net/url"
	"strings"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// SupplierForm holds a submitted supplier form.
type SupplierForm struct {
	Name    string
	Address string
	Tel     string
	Errors  []FieldError
}

// ParseSupplier reads a supplier submission, trimming all fields.
func ParseSupplier(v url.Values) *SupplierForm {
	return &SupplierForm{
		Name:    strings.TrimSpace(v.Get("name")),
		Address: strings.TrimSpace(v.Get("address")),
		Tel:     strings.TrimSpace(v.Get("tel")),
	}
}

// SupplierFormOf pre-fills a form from an existing record, for update pages.
func SupplierFormOf(s *models.Supplier) *SupplierForm {
	return &SupplierForm{Name: s.Name, Address: s.Address, Tel: s.Tel}
}

// Validate checks the submission and returns true when it is acceptable.
func (f *SupplierForm) Validate() bool {
	f.Errors = nil
	if f.Name == "" {
		f.AddError("name", "Name must not be empty.")
	}
	if f.Address == "" {
		f.AddError("address", "Address must not be empty.")
	}
	if f.Tel == "" {
		f.AddError("tel", "Tel must not be empty.")
	}
	return len(f.Errors) == 0
}

// AddError appends a field error, for failures detected after validation
// such as a duplicate name reported by the store.
func (f *SupplierForm) AddError(field, message string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: message})
}

// Record builds the supplier draft from a validated form.
func (f *SupplierForm) Record() *models.Supplier {
	return &models.Supplier{Name: f.Name, Address: f.Address, Tel: f.Tel}
}
