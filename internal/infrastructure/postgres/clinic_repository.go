package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

var _ repository.ClinicRepository = (*ClinicRepo)(nil)

// ClinicRepo implementación del puerto ClinicRepository sobre PostgreSQL.
type ClinicRepo struct {
	q Querier
}

// NewClinicRepository construye el adaptador de persistencia para clínicas.
func NewClinicRepository(q Querier) *ClinicRepo {
	return &ClinicRepo{q: q}
}

// Create persiste una clínica nueva.
func (r *ClinicRepo) Create(ctx context.Context, c *entity.Clinic) error {
	query := `
		INSERT INTO clinics (id, name, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Address, c.Phone, c.Email, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert clinic: %w", err)
	}
	return nil
}

// GetByID obtiene una clínica por ID.
func (r *ClinicRepo) GetByID(ctx context.Context, id string) (*entity.Clinic, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM clinics WHERE id = $1`
	var c entity.Clinic
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return &c, nil
}

// List lista clínicas con paginación.
func (r *ClinicRepo) List(ctx context.Context, limit, offset int) ([]entity.Clinic, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM clinics ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()
	var list []entity.Clinic
	for rows.Next() {
		var c entity.Clinic
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan clinic: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
