package booking

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockPropertyReader struct {
	mock.Mock
}

func (m *mockPropertyReader) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func validRequest() CreateBookingRequest {
	checkin := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return CreateBookingRequest{
		UserID:         "u-1",
		PropertyID:     "p-1",
		CheckinDate:    checkin,
		CheckoutDate:   checkin.Add(48 * time.Hour),
		NumberOfGuests: 2,
		TotalPrice:     240,
	}
}

func TestService_Create_DefaultsStatusToPending(t *testing.T) {
	bookings := new(mockBookingRepo)
	users := new(mockUserReader)
	properties := new(mockPropertyReader)

	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1"}, nil)
	properties.On("GetByID", mock.Anything, "p-1").Return(&domain.Property{ID: "p-1"}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(bookings, users, properties)

	b, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.BookingStatus)

	bookings.AssertExpectations(t)
}

func TestService_Create_KeepsExplicitStatus(t *testing.T) {
	bookings := new(mockBookingRepo)
	users := new(mockUserReader)
	properties := new(mockPropertyReader)

	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{ID: "u-1"}, nil)
	properties.On("GetByID", mock.Anything, "p-1").Return(&domain.Property{ID: "p-1"}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(bookings, users, properties)

	req := validRequest()
	req.BookingStatus = "confirmed"
	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.BookingStatus)
}

func TestService_Create_RejectsInvertedDates(t *testing.T) {
	svc := NewService(new(mockBookingRepo), new(mockUserReader), new(mockPropertyReader))

	req := validRequest()
	req.CheckoutDate = req.CheckinDate.Add(-time.Hour)
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestService_Create_UnknownUser(t *testing.T) {
	bookings := new(mockBookingRepo)
	users := new(mockUserReader)
	properties := new(mockPropertyReader)

	users.On("GetByID", mock.Anything, "u-1").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, users, properties)

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListByUser_UnknownUser(t *testing.T) {
	bookings := new(mockBookingRepo)
	users := new(mockUserReader)

	users.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, users, new(mockPropertyReader))

	_, err := svc.ListByUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Update_ValidatesDates(t *testing.T) {
	bookings := new(mockBookingRepo)

	checkin := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	existing := &domain.Booking{
		ID:           "b-1",
		CheckinDate:  checkin,
		CheckoutDate: checkin.Add(48 * time.Hour),
	}
	bookings.On("GetByID", mock.Anything, "b-1").Return(existing, nil)

	svc := NewService(bookings, new(mockUserReader), new(mockPropertyReader))

	badCheckout := checkin.Add(-time.Hour)
	_, err := svc.Update(context.Background(), "b-1", UpdateBookingRequest{CheckoutDate: &badCheckout})
	assert.ErrorIs(t, err, ErrInvalidDates)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
