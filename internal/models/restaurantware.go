package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantWare is a durable good (plates, cutlery, pans) rather than a
// consumable. Same shape as Ingredient with stock in place of quantity.
type RestaurantWare struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Type       string     `gorm:"size:100;not null" json:"type"`
	Cost       float64    `json:"cost"`
	Stock      float64    `json:"stock"`
	Critical   float64    `json:"critical"`
	SupplierID *uuid.UUID `gorm:"type:varchar(36);index" json:"supplier_id"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (w *RestaurantWare) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// URL returns the path of the ware's detail page.
func (w *RestaurantWare) URL() string {
	return "/inventory/restaurantware/" + w.ID.String()
}

// NeedsRestock reports whether the stock has fallen below the critical
// threshold. Advisory only.
func (w *RestaurantWare) NeedsRestock() bool {
	return w.Stock < w.Critical
}
