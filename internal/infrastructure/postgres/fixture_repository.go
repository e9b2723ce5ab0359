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

var _ repository.FixtureRepository = (*FixtureRepo)(nil)

const fixtureColumns = `id, clinic_id, manufacturer, brand, size, initial_stock,
	usage_count, current_stock, recommended_stock, monthly_avg_usage, daily_max_usage,
	created_at, updated_at`

// FixtureRepo implementación del puerto FixtureRepository sobre PostgreSQL (usable con pool o tx).
type FixtureRepo struct {
	q Querier
}

// NewFixtureRepository construye el adaptador de persistencia para fixtures. Pasar pool o tx (Querier).
func NewFixtureRepository(q Querier) *FixtureRepo {
	return &FixtureRepo{q: q}
}

// Create persiste una referencia nueva; los campos calculados inician en cero.
func (r *FixtureRepo) Create(ctx context.Context, f *entity.Fixture) error {
	query := `
		INSERT INTO fixtures (id, clinic_id, manufacturer, brand, size, initial_stock,
			usage_count, current_stock, recommended_stock, monthly_avg_usage, daily_max_usage,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.ClinicID, f.Manufacturer, f.Brand, f.Size, f.InitialStock,
		f.UsageCount, f.CurrentStock, f.RecommendedStock, f.MonthlyAvgUsage, f.DailyMaxUsage,
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fixture: %w", err)
	}
	return nil
}

// GetByID obtiene un fixture por ID.
func (r *FixtureRepo) GetByID(ctx context.Context, id string) (*entity.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE id = $1`
	var f entity.Fixture
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.ClinicID, &f.Manufacturer, &f.Brand, &f.Size, &f.InitialStock,
		&f.UsageCount, &f.CurrentStock, &f.RecommendedStock, &f.MonthlyAvgUsage, &f.DailyMaxUsage,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fixture: %w", err)
	}
	return &f, nil
}

// ListByClinic devuelve el inventario completo de la clínica (sin paginar: el
// motor de conciliación necesita la lista entera).
func (r *FixtureRepo) ListByClinic(ctx context.Context, clinicID string) ([]entity.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE clinic_id = $1 ORDER BY manufacturer, brand, size`
	rows, err := r.q.Query(ctx, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	defer rows.Close()
	var list []entity.Fixture
	for rows.Next() {
		var f entity.Fixture
		if err := rows.Scan(
			&f.ID, &f.ClinicID, &f.Manufacturer, &f.Brand, &f.Size, &f.InitialStock,
			&f.UsageCount, &f.CurrentStock, &f.RecommendedStock, &f.MonthlyAvgUsage, &f.DailyMaxUsage,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update actualiza identidad y línea base. Los campos calculados no se tocan
// aquí; los escribe UpdateComputed tras el recálculo.
func (r *FixtureRepo) Update(ctx context.Context, f *entity.Fixture) error {
	query := `
		UPDATE fixtures SET manufacturer = $2, brand = $3, size = $4, initial_stock = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.Manufacturer, f.Brand, f.Size, f.InitialStock, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fixture: %w", err)
	}
	return nil
}

// UpdateComputed reescribe los cinco campos calculados de cada fixture en un
// solo batch (recálculo completo del motor).
func (r *FixtureRepo) UpdateComputed(ctx context.Context, fixtures []entity.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}
	query := `
		UPDATE fixtures SET usage_count = $2, current_stock = $3, recommended_stock = $4,
			monthly_avg_usage = $5, daily_max_usage = $6, updated_at = now()
		WHERE id = $1`
	batch := &pgx.Batch{}
	for _, f := range fixtures {
		batch.Queue(query, f.ID, f.UsageCount, f.CurrentStock, f.RecommendedStock, f.MonthlyAvgUsage, f.DailyMaxUsage)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range fixtures {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("update fixture computed: %w", err)
		}
	}
	return nil
}

// Delete elimina un fixture por ID.
func (r *FixtureRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM fixtures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	return nil
}
