package review

import (
	"context"
	"errors"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, rv *domain.Review) error
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id string) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type PropertyReader interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}

type Service struct {
	reviews    ReviewRepositoryInterface
	users      UserReader
	properties PropertyReader
}

func NewService(reviews ReviewRepositoryInterface, users UserReader, properties PropertyReader) *Service {
	return &Service{reviews: reviews, users: users, properties: properties}
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.properties.GetByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Rating != nil {
		rv.Rating = *req.Rating
	}
	if req.Comment != "" {
		rv.Comment = req.Comment
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.reviews.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
