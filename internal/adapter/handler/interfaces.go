package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/usecase/auth"
	"github.com/photolog-dev/photolog-backend/internal/usecase/gallery"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
}

type GalleryService interface {
	ListPublic(ctx context.Context, offset, limit int) ([]entity.Photo, error)
	ListAdmin(ctx context.Context, scope repository.Scope) ([]entity.Photo, error)
	Overview(ctx context.Context) (active, trash []entity.Photo, err error)
	Create(ctx context.Context, input gallery.CreateInput) (*entity.Photo, error)
	Update(ctx context.Context, photoID uuid.UUID, meta entity.Metadata) (*entity.Photo, error)
	SoftDelete(ctx context.Context, photoID uuid.UUID) error
	Restore(ctx context.Context, photoID uuid.UUID) error
	PermanentDelete(ctx context.Context, photoID uuid.UUID) error
}
