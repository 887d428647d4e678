package property

import (
	"context"
	"errors"

	"staybook/internal/domain"
	"staybook/internal/repository"

	"gorm.io/gorm"
)

type PropertyRepositoryInterface interface {
	List(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
	ReplaceAmenities(ctx context.Context, p *domain.Property, amenities []domain.Amenity) error
}

type HostReader interface {
	GetByID(ctx context.Context, id string) (*domain.Host, error)
}

type AmenityReader interface {
	GetByNames(ctx context.Context, names []string) ([]domain.Amenity, error)
}

type Service struct {
	properties PropertyRepositoryInterface
	hosts      HostReader
	amenities  AmenityReader
}

func NewService(properties PropertyRepositoryInterface, hosts HostReader, amenities AmenityReader) *Service {
	return &Service{properties: properties, hosts: hosts, amenities: amenities}
}

func (s *Service) List(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, error) {
	return s.properties.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreatePropertyRequest) (*domain.Property, error) {
	if _, err := s.hosts.GetByID(ctx, req.HostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}

	p := &domain.Property{
		HostID:        req.HostID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		BedroomCount:  req.BedroomCount,
		BathRoomCount: req.BathRoomCount,
		MaxGuestCount: req.MaxGuestCount,
		Rating:        req.Rating,
	}

	if len(req.Amenities) > 0 {
		amenities, err := s.amenities.GetByNames(ctx, req.Amenities)
		if err != nil {
			return nil, err
		}
		p.Amenities = amenities
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Location != "" {
		p.Location = req.Location
	}
	if req.PricePerNight != nil {
		p.PricePerNight = *req.PricePerNight
	}
	if req.BedroomCount != nil {
		p.BedroomCount = *req.BedroomCount
	}
	if req.BathRoomCount != nil {
		p.BathRoomCount = *req.BathRoomCount
	}
	if req.MaxGuestCount != nil {
		p.MaxGuestCount = *req.MaxGuestCount
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}

	if req.Amenities != nil {
		amenities, err := s.amenities.GetByNames(ctx, req.Amenities)
		if err != nil {
			return nil, err
		}
		if err := s.properties.ReplaceAmenities(ctx, p, amenities); err != nil {
			return nil, err
		}
		p.Amenities = amenities
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.properties.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
