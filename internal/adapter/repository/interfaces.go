package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// Scope selects which side of the soft-delete partition an admin listing reads.
type Scope string

const (
	ScopeActive Scope = "active"
	ScopeTrash  Scope = "trash"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	ListPublic(ctx context.Context, window pagination.Window) ([]entity.Photo, error)
	ListByScope(ctx context.Context, scope Scope) ([]entity.Photo, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, meta entity.Metadata) (*entity.Photo, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
