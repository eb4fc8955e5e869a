package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
)

type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query, admin.ID, admin.Email, admin.PasswordHash).Scan(&admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting admin: %w", err)
	}
	return nil
}

func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admins WHERE id = $1`
	return r.scanAdmin(ctx, query, id)
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`
	return r.scanAdmin(ctx, query, email)
}

func (r *AdminRepo) scanAdmin(ctx context.Context, query string, args ...any) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("querying admin: %w", err)
	}
	return &admin, nil
}
