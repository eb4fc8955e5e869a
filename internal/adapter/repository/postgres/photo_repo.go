package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/pkg/pagination"
)

// Every listing uses the same total order: newest shot first, insertion time
// breaking ties.
const photoOrder = "ORDER BY shot_date DESC, created_at DESC"

const photoColumns = "id, title, caption, tags, shot_date, image_path, created_at, updated_at, deleted_at"

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	query := `
		INSERT INTO photos (id, title, caption, tags, shot_date, image_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		photo.ID, photo.Title, photo.Caption, photo.Tags, photo.ShotDate, photo.ImagePath,
	).Scan(&photo.CreatedAt, &photo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting photo: %w", err)
	}
	return nil
}

func (r *PhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	query := fmt.Sprintf("SELECT %s FROM photos WHERE id = $1", photoColumns)

	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("querying photo: %w", err)
	}
	return photo, nil
}

func (r *PhotoRepo) ListPublic(ctx context.Context, window pagination.Window) ([]entity.Photo, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM photos
		WHERE deleted_at IS NULL
		%s
		LIMIT $1 OFFSET $2
	`, photoColumns, photoOrder)

	rows, err := r.pool.Query(ctx, query, window.Limit, window.Offset)
	if err != nil {
		return nil, fmt.Errorf("querying public photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (r *PhotoRepo) ListByScope(ctx context.Context, scope repository.Scope) ([]entity.Photo, error) {
	filter := "deleted_at IS NULL"
	if scope == repository.ScopeTrash {
		filter = "deleted_at IS NOT NULL"
	}
	query := fmt.Sprintf("SELECT %s FROM photos WHERE %s %s", photoColumns, filter, photoOrder)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s photos: %w", scope, err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

// UpdateMetadata touches only the caller-editable fields. image_path and
// deleted_at are never written here; updated_at is refreshed by the database
// trigger.
func (r *PhotoRepo) UpdateMetadata(ctx context.Context, id uuid.UUID, meta entity.Metadata) (*entity.Photo, error) {
	query := fmt.Sprintf(`
		UPDATE photos
		SET title = $2, caption = $3, tags = $4, shot_date = $5
		WHERE id = $1
		RETURNING %s
	`, photoColumns)

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, id, meta.Title, meta.CaptionPtr(), tags, meta.ShotDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("updating photo: %w", err)
	}
	return photo, nil
}

// SoftDelete stamps deleted_at unconditionally; trashing an already-trashed
// photo just refreshes the timestamp.
func (r *PhotoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE photos SET deleted_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft deleting photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE photos SET deleted_at = NULL WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("restoring photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM photos WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func scanPhoto(row pgx.Row) (*entity.Photo, error) {
	var photo entity.Photo
	err := row.Scan(
		&photo.ID, &photo.Title, &photo.Caption, &photo.Tags, &photo.ShotDate,
		&photo.ImagePath, &photo.CreatedAt, &photo.UpdatedAt, &photo.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func scanPhotos(rows pgx.Rows) ([]entity.Photo, error) {
	var photos []entity.Photo
	for rows.Next() {
		var photo entity.Photo
		if err := rows.Scan(
			&photo.ID, &photo.Title, &photo.Caption, &photo.Tags, &photo.ShotDate,
			&photo.ImagePath, &photo.CreatedAt, &photo.UpdatedAt, &photo.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}
