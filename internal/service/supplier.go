package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// SupplierService handles supplier store operations
type SupplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a new SupplierService instance
func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// List returns all suppliers ordered by name ascending.
func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.WithContext(ctx).Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Get retrieves a supplier by ID
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// Create persists a new supplier. A name collision with an existing supplier
// is reported as ErrDuplicateName.
func (s *SupplierService) Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := s.db.WithContext(ctx).Create(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return supplier, nil
}

// Update overwrites the supplier at the given id.
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, supplier *models.Supplier) (*models.Supplier, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":    supplier.Name,
		"address": supplier.Address,
		"tel":     supplier.Tel,
	}
	if err := s.db.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the supplier at the given id. Ingredients and wares that
// still reference it keep their dangling reference.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id).Error
}

// Count returns the number of suppliers.
func (s *SupplierService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Supplier{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
