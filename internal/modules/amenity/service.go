package amenity

import (
	"context"
	"errors"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type AmenityRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Amenity, error)
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, a *domain.Amenity) error
	Update(ctx context.Context, a *domain.Amenity) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	amenities AmenityRepositoryInterface
}

func NewService(amenities AmenityRepositoryInterface) *Service {
	return &Service{amenities: amenities}
}

func (s *Service) List(ctx context.Context) ([]domain.Amenity, error) {
	return s.amenities.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	a, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, name string) (*domain.Amenity, error) {
	exists, err := s.amenities.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	a := &domain.Amenity{Name: name}
	if err := s.amenities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id, name string) (*domain.Amenity, error) {
	a, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Name = name
	if err := s.amenities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.amenities.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
