package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

// AdminRepo implements domain.AdminRepository backed by PostgreSQL.
type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// FindByCredentials matches username and password by plaintext equality,
// mirroring the deployed behavior this service replaces. Unknown username
// and wrong password are indistinguishable to the caller.
func (r *AdminRepo) FindByCredentials(ctx context.Context, username, password string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password
		FROM admins
		WHERE username = $1 AND password = $2
		LIMIT 1
	`, username, password).Scan(&admin.ID, &admin.Username, &admin.Password)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (r *AdminRepo) Create(ctx context.Context, username, password string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`, username, password).Scan(&admin.ID, &admin.Username, &admin.Password)

	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}
