package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/models"
)

// WareService handles restaurant-ware store operations
type WareService struct {
	db *gorm.DB
}

// NewWareService creates a new WareService instance
func NewWareService(db *gorm.DB) *WareService {
	return &WareService{db: db}
}

// List returns all wares ordered by name ascending, with each supplier
// reference resolved. A deleted supplier resolves to nil.
func (s *WareService) List(ctx context.Context) ([]models.RestaurantWare, error) {
	var wares []models.RestaurantWare
	if err := s.db.WithContext(ctx).Preload("Supplier").Order("name asc").Find(&wares).Error; err != nil {
		return nil, err
	}
	return wares, nil
}

// Get retrieves a ware by ID with its supplier resolved
func (s *WareService) Get(ctx context.Context, id uuid.UUID) (*models.RestaurantWare, error) {
	var ware models.RestaurantWare
	if err := s.db.WithContext(ctx).Preload("Supplier").First(&ware, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ware, nil
}

// Create persists a new ware
func (s *WareService) Create(ctx context.Context, ware *models.RestaurantWare) (*models.RestaurantWare, error) {
	if err := s.db.WithContext(ctx).Create(ware).Error; err != nil {
		return nil, err
	}
	return ware, nil
}

// Update overwrites the ware at the given id.
func (s *WareService) Update(ctx context.Context, id uuid.UUID, ware *models.RestaurantWare) (*models.RestaurantWare, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":        ware.Name,
		"type":        ware.Type,
		"cost":        ware.Cost,
		"stock":       ware.Stock,
		"critical":    ware.Critical,
		"supplier_id": ware.SupplierID,
	}
	if err := s.db.WithContext(ctx).Model(&models.RestaurantWare{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the ware at the given id.
func (s *WareService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.RestaurantWare{}, "id = ?", id).Error
}

// DistinctTypes returns the type tags currently in use, one entry per tag.
func (s *WareService) DistinctTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := s.db.WithContext(ctx).Model(&models.RestaurantWare{}).
		Distinct("type").Where("type <> ''").Order("type asc").
		Pluck("type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Count returns the number of wares.
func (s *WareService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.RestaurantWare{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
