package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/adapter/storage"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/pkg/pagination"
)

// Service is the photo repository of the gallery: it translates between stored
// rows plus bucket objects and application-level photos, and owns the ordered
// multi-step workflows that keep the two stores consistent with each other.
type Service struct {
	photoRepo repository.PhotoRepository
	storage   storage.ObjectStorage
}

func NewService(photoRepo repository.PhotoRepository, objectStorage storage.ObjectStorage) *Service {
	return &Service{
		photoRepo: photoRepo,
		storage:   objectStorage,
	}
}

// ListPublic returns one page of the public feed, newest shot first. A batch
// shorter than limit tells the caller the feed is exhausted.
func (s *Service) ListPublic(ctx context.Context, offset, limit int) ([]entity.Photo, error) {
	if limit < 1 {
		return nil, domain.ErrInvalidLimit
	}
	if offset < 0 {
		offset = 0
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	photos, err := s.photoRepo.ListPublic(ctx, pagination.Window{Offset: offset, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing public photos: %w", err)
	}

	s.resolveURLs(photos)
	return photos, nil
}

func (s *Service) ListAdmin(ctx context.Context, scope repository.Scope) ([]entity.Photo, error) {
	if scope != repository.ScopeActive && scope != repository.ScopeTrash {
		return nil, domain.ErrInvalidScope
	}

	photos, err := s.photoRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("listing %s photos: %w", scope, err)
	}

	s.resolveURLs(photos)
	return photos, nil
}

// Overview fetches the active and trashed sets together. The two queries are
// independent reads, so they run concurrently; the result is consumed only
// once both complete.
func (s *Service) Overview(ctx context.Context) (active, trash []entity.Photo, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		active, err = s.photoRepo.ListByScope(ctx, repository.ScopeActive)
		return err
	})
	g.Go(func() error {
		var err error
		trash, err = s.photoRepo.ListByScope(ctx, repository.ScopeTrash)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("listing photos: %w", err)
	}

	s.resolveURLs(active)
	s.resolveURLs(trash)
	return active, trash, nil
}

type CreateInput struct {
	OwnerID     uuid.UUID
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
	Metadata    entity.Metadata
}

// Create uploads the blob first, then inserts the row. The two stores share no
// transaction, so a failed insert compensates by deleting the object that was
// just written; a failed upload leaves nothing to clean up.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Photo, error) {
	key := buildObjectKey(input.OwnerID, input.Filename)

	if err := s.storage.Upload(ctx, key, input.File, input.ContentType, input.Size); err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	photo := entity.NewPhoto(input.Metadata, key)

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("creating photo record: %w", err)
	}

	photo.ImageURL = s.storage.PublicURL(key)
	return photo, nil
}

// Update rewrites the editable metadata only; image_path and deleted_at are
// never touched here.
func (s *Service) Update(ctx context.Context, photoID uuid.UUID, meta entity.Metadata) (*entity.Photo, error) {
	photo, err := s.photoRepo.UpdateMetadata(ctx, photoID, meta.Normalize())
	if err != nil {
		return nil, err
	}

	photo.ImageURL = s.storage.PublicURL(photo.ImagePath)
	return photo, nil
}

func (s *Service) SoftDelete(ctx context.Context, photoID uuid.UUID) error {
	return s.photoRepo.SoftDelete(ctx, photoID)
}

func (s *Service) Restore(ctx context.Context, photoID uuid.UUID) error {
	return s.photoRepo.Restore(ctx, photoID)
}

// PermanentDelete removes the object before the row. A row left with a
// dangling image_path is discoverable and the operation can simply run again,
// which is why an already-gone object counts as success; the reverse order
// would orphan a blob nothing references.
func (s *Service) PermanentDelete(ctx context.Context, photoID uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, photo.ImagePath); err != nil && !errors.Is(err, domain.ErrObjectNotFound) {
		return fmt.Errorf("deleting image: %w", err)
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("deleting photo record: %w", err)
	}

	return nil
}

func (s *Service) resolveURLs(photos []entity.Photo) {
	for i := range photos {
		photos[i].ImageURL = s.storage.PublicURL(photos[i].ImagePath)
	}
}
