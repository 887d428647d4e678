package auth

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain"
	jwtsvc "staybook/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func newTokenService() *jwtsvc.Service {
	return jwtsvc.New("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
}

func TestService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "a").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(userRepo, newTokenService())

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:          "A@X.com",
		Password:       "pw123456",
		Username:       "a",
		Name:           "A",
		PhoneNumber:    "1",
		ProfilePicture: "p",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email, "email must be normalized to lowercase")
	assert.Empty(t, user.Password, "password hash must not leave the service")

	created := userRepo.Calls[2].Arguments.Get(1).(*domain.User)
	assert.Nil(t, created.RefreshToken, "refresh token starts unset")

	userRepo.AssertExpectations(t)
}

func TestService_Register_StoresVerifiableHash(t *testing.T) {
	userRepo := new(mockUserRepo)

	var storedHash string
	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "a").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.Get(1).(*domain.User).Password
	}).Return(nil)

	service := NewService(userRepo, newTokenService())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:          "a@x.com",
		Password:       "pw123456",
		Username:       "a",
		Name:           "A",
		PhoneNumber:    "1",
		ProfilePicture: "p",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "pw123456", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw123456")))
}

func TestService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "exists@x.com").Return(true, nil)

	service := NewService(userRepo, newTokenService())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "EXISTS@X.com",
		Password: "pw123456",
		Username: "someone",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "new@x.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	service := NewService(userRepo, newTokenService())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "new@x.com",
		Password: "pw123456",
		Username: "taken",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success_PersistsRefreshToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokens := newTokenService()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:       "u-10",
		Email:    "a@x.com",
		Username: "a",
		Password: string(hashed),
	}

	var persisted *string
	userRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil)
	userRepo.On("UpdateRefreshToken", mock.Anything, "u-10", mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(2).(*string)
	}).Return(nil)

	service := NewService(userRepo, tokens)

	pair, err := service.Login(context.Background(), LoginRequest{
		Email:    "A@X.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	require.NotNil(t, persisted)
	assert.Equal(t, pair.RefreshToken, *persisted)

	claims, err := tokens.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u-10", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	userRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword_NothingPersisted(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	existing := &domain.User{ID: "u-10", Email: "a@x.com", Password: string(hashed)}

	userRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil)

	service := NewService(userRepo, newTokenService())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_UserNotFound(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("GetByEmail", mock.Anything, "missing@x.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, newTokenService())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "missing@x.com",
		Password: "pw",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Refresh_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokens := newTokenService()

	refresh, err := tokens.GenerateRefreshToken("u-10", "a@x.com")
	require.NoError(t, err)

	user := &domain.User{ID: "u-10", Email: "a@x.com", RefreshToken: &refresh}
	userRepo.On("GetByID", mock.Anything, "u-10").Return(user, nil)

	service := NewService(userRepo, tokens)

	access, err := service.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := tokens.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u-10", claims.UserID)
}

func TestService_Refresh_SupersededTokenRejected(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokens := newTokenService()

	old, err := tokens.GenerateRefreshToken("u-10", "a@x.com")
	require.NoError(t, err)
	// A later login issued a different token; IssuedAt differs.
	time.Sleep(1100 * time.Millisecond)
	current, err := tokens.GenerateRefreshToken("u-10", "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, old, current)

	user := &domain.User{ID: "u-10", Email: "a@x.com", RefreshToken: &current}
	userRepo.On("GetByID", mock.Anything, "u-10").Return(user, nil)

	service := NewService(userRepo, tokens)

	// The old token is cryptographically valid but no longer stored.
	_, err = service.Refresh(context.Background(), old)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Refresh_UserGone(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokens := newTokenService()

	refresh, err := tokens.GenerateRefreshToken("u-gone", "gone@x.com")
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, "u-gone").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, tokens)

	_, err = service.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Refresh_GarbageToken(t *testing.T) {
	userRepo := new(mockUserRepo)

	service := NewService(userRepo, newTokenService())

	_, err := service.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Refresh_AccessTokenRejected(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokens := newTokenService()

	// An access token must never pass the refresh verification.
	access, err := tokens.GenerateAccessToken("u-10", "a@x.com")
	require.NoError(t, err)

	service := NewService(userRepo, tokens)

	_, err = service.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Logout_ClearsStoredToken(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("UpdateRefreshToken", mock.Anything, "u-10", (*string)(nil)).Return(nil)

	service := NewService(userRepo, newTokenService())

	err := service.Logout(context.Background(), "u-10")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
