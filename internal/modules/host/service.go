package host

import (
	"context"
	"errors"
	"strings"

	"staybook/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type HostRepositoryInterface interface {
	List(ctx context.Context, name string) ([]domain.Host, error)
	GetByID(ctx context.Context, id string) (*domain.Host, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, h *domain.Host) error
	Update(ctx context.Context, h *domain.Host) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	hosts HostRepositoryInterface
}

func NewService(hosts HostRepositoryInterface) *Service {
	return &Service{hosts: hosts}
}

func (s *Service) List(ctx context.Context, name string) ([]domain.Host, error) {
	return s.hosts.List(ctx, name)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Host, error) {
	h, err := s.hosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, req CreateHostRequest) (*domain.Host, error) {
	taken, err := s.hosts.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	h := &domain.Host{
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Password:       string(hash),
		Username:       req.Username,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		AboutMe:        req.AboutMe,
	}

	if err := s.hosts.Create(ctx, h); err != nil {
		return nil, err
	}

	h.Password = ""
	return h, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateHostRequest) (*domain.Host, error) {
	h, err := s.hosts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		h.Name = req.Name
	}
	if req.Email != "" {
		h.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.PhoneNumber != "" {
		h.PhoneNumber = req.PhoneNumber
	}
	if req.ProfilePicture != "" {
		h.ProfilePicture = req.ProfilePicture
	}
	if req.AboutMe != "" {
		h.AboutMe = req.AboutMe
	}

	if err := s.hosts.Update(ctx, h); err != nil {
		return nil, err
	}

	h.Password = ""
	return h, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.hosts.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
