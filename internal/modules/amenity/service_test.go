package amenity

import (
	"context"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockAmenityRepo struct {
	mock.Mock
}

func (m *mockAmenityRepo) List(ctx context.Context) ([]domain.Amenity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockAmenityRepo) Create(ctx context.Context, a *domain.Amenity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAmenityRepo) Update(ctx context.Context, a *domain.Amenity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAmenityRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := new(mockAmenityRepo)
	repo.On("ExistsByName", mock.Anything, "Wifi").Return(true, nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "Wifi")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	repo := new(mockAmenityRepo)
	repo.On("Delete", mock.Anything, "a-1").Return(nil)

	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "a-1"))
	// Delete goes straight to the repository; no lookup first.
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_Delete_MissingAmenity(t *testing.T) {
	repo := new(mockAmenityRepo)
	repo.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	svc := NewService(repo)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
