package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/auth"
)

type Service struct {
	adminRepo repository.AdminRepository
	jwtSvc    *auth.JWTService
	hasher    *auth.PasswordHasher
}

func NewService(adminRepo repository.AdminRepository, jwtSvc *auth.JWTService, hasher *auth.PasswordHasher) *Service {
	return &Service{
		adminRepo: adminRepo,
		jwtSvc:    jwtSvc,
		hasher:    hasher,
	}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Admin       *entity.Admin
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Admin:       admin,
	}, nil
}

// EnsureAdmin seeds the allow-list at startup. It is a no-op when the email is
// already registered.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if _, err := s.adminRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return fmt.Errorf("looking up admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	return nil
}
