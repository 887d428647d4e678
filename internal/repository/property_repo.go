package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

// PropertyFilter narrows the property listing; zero values mean no filter.
type PropertyFilter struct {
	Location      string
	PricePerNight *float64
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Model(&domain.Property{}).Preload("Amenities")
	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.PricePerNight != nil {
		q = q.Where("price_per_night = ?", *filter.PricePerNight)
	}

	var properties []domain.Property
	tx := q.Order("created_at").Find(&properties)
	return properties, tx.Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	tx := r.db.WithContext(ctx).Preload("Amenities").Where("id = ?", id).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Property{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAmenities swaps the property's amenity set in one association call.
func (r *PropertyRepository) ReplaceAmenities(ctx context.Context, p *domain.Property, amenities []domain.Amenity) error {
	return r.db.WithContext(ctx).Model(p).Association("Amenities").Replace(amenities)
}
