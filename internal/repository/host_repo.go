package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type HostRepository struct {
	db *gorm.DB
}

func NewHostRepository(db *gorm.DB) *HostRepository {
	return &HostRepository{db: db}
}

// List returns all hosts, optionally filtered by a name substring.
func (r *HostRepository) List(ctx context.Context, name string) ([]domain.Host, error) {
	q := r.db.WithContext(ctx).Model(&domain.Host{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	var hosts []domain.Host
	tx := q.Order("created_at").Find(&hosts)
	return hosts, tx.Error
}

func (r *HostRepository) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	var h domain.Host
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&h)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

func (r *HostRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Host{}).
		Where("username = ?", username).
		Count(&count)
	return count > 0, tx.Error
}

func (r *HostRepository) Create(ctx context.Context, h *domain.Host) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HostRepository) Update(ctx context.Context, h *domain.Host) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HostRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Host{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
