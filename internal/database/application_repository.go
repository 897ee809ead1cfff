package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

// applicationColumns must match the Scan order in scanApplication.
const applicationColumns = `id, name, phone, email, vehicle_type, make, model, year, registration_number, created_at`

// ApplicationRepo implements domain.ApplicationRepository backed by PostgreSQL.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Insert(ctx context.Context, app *domain.Application) (uuid.UUID, error) {
	// registration_number is the only optional column; empty means absent.
	var regNumber *string
	if app.RegistrationNumber != "" {
		regNumber = &app.RegistrationNumber
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (name, phone, email, vehicle_type, make, model, year, registration_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, app.Name, app.Phone, app.Email, app.VehicleType, app.Make, app.Model, app.Year, regNumber, app.CreatedAt).Scan(&id)

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert application: %w", err)
	}
	return id, nil
}

func (r *ApplicationRepo) ListAll(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var regNumber *string
		err := rows.Scan(
			&app.ID, &app.Name, &app.Phone, &app.Email, &app.VehicleType,
			&app.Make, &app.Model, &app.Year, &regNumber, &app.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if regNumber != nil {
			app.RegistrationNumber = *regNumber
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	return apps, nil
}
