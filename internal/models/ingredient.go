package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a consumable stock item. Type is an open-ended tag: the set of
// valid types is whatever the live records currently use, not a fixed enum.
// The supplier reference is required on the form but not constrained in the
// store, so SupplierID may point at a supplier that has since been deleted.
type Ingredient struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Type       string     `gorm:"size:100;not null" json:"type"`
	Cost       float64    `json:"cost"`
	Quantity   float64    `json:"quantity"`
	Critical   float64    `json:"critical"`
	SupplierID *uuid.UUID `gorm:"type:varchar(36);index" json:"supplier_id"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// URL returns the path of the ingredient's detail page.
func (i *Ingredient) URL() string {
	return "/inventory/ingredient/" + i.ID.String()
}

// NeedsRestock reports whether the quantity has fallen below the critical
// threshold. Advisory only.
func (i *Ingredient) NeedsRestock() bool {
	return i.Quantity < i.Critical
}
