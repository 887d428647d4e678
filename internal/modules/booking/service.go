package booking

import (
	"context"
	"errors"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type PropertyReader interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}

type Service struct {
	bookings   BookingRepositoryInterface
	users      UserReader
	properties PropertyReader
}

func NewService(bookings BookingRepositoryInterface, users UserReader, properties PropertyReader) *Service {
	return &Service{bookings: bookings, users: users, properties: properties}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckoutDate.After(req.CheckinDate) {
		return nil, ErrInvalidDates
	}

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

	status := domain.BookingStatus(req.BookingStatus)
	if status == "" {
		status = domain.BookingPending
	}

	b := &domain.Booking{
		UserID:         req.UserID,
		PropertyID:     req.PropertyID,
		CheckinDate:    req.CheckinDate,
		CheckoutDate:   req.CheckoutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     req.TotalPrice,
		BookingStatus:  status,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.CheckinDate != nil {
		b.CheckinDate = *req.CheckinDate
	}
	if req.CheckoutDate != nil {
		b.CheckoutDate = *req.CheckoutDate
	}
	if !b.CheckoutDate.After(b.CheckinDate) {
		return nil, ErrInvalidDates
	}
	if req.NumberOfGuests != nil {
		b.NumberOfGuests = *req.NumberOfGuests
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if req.BookingStatus != "" {
		b.BookingStatus = domain.BookingStatus(req.BookingStatus)
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.bookings.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
