package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	var amenities []domain.Amenity
	tx := r.db.WithContext(ctx).Order("name").Find(&amenities)
	return amenities, tx.Error
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	var a domain.Amenity
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AmenityRepository) GetByNames(ctx context.Context, names []string) ([]domain.Amenity, error) {
	var amenities []domain.Amenity
	tx := r.db.WithContext(ctx).Where("name IN ?", names).Find(&amenities)
	return amenities, tx.Error
}

func (r *AmenityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Amenity{}).
		Where("name = ?", name).
		Count(&count)
	return count > 0, tx.Error
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Amenity{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
