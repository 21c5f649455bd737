package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier is a vendor the restaurant buys ingredients and wares from.
// Supplier names are unique across the table; duplicates fail at the store layer.
type Supplier struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Tel       string    `gorm:"size:50;not null" json:"tel"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// URL returns the path of the supplier's detail page.
func (s *Supplier) URL() string {
	return "/inventory/supplier/" + s.ID.String()
}
