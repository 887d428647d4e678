package auth

import (
	"context"

	"staybook/internal/domain"
	jwtsvc "staybook/internal/pkg/jwt"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateRefreshToken(ctx context.Context, id string, token *string) error
}

type tokenService interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID, email string) (string, error)
	ParseRefreshToken(tokenStr string) (*jwtsvc.Claims, error)
}
