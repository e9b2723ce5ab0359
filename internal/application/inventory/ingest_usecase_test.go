package inventory_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeSheetReader devuelve filas fijas, ignorando el reader.
type fakeSheetReader struct {
	rows []entity.RawRow
	err  error
}

func (f *fakeSheetReader) ReadRows(io.Reader) ([]entity.RawRow, error) {
	return f.rows, f.err
}

// memSurgeryRepo log de cirugías en memoria.
type memSurgeryRepo struct {
	records []entity.SurgeryRecord
}

func (m *memSurgeryRepo) BulkInsert(_ context.Context, records []entity.SurgeryRecord) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *memSurgeryRepo) ListByClinic(_ context.Context, clinicID string) ([]entity.SurgeryRecord, error) {
	var out []entity.SurgeryRecord
	for _, rec := range m.records {
		if rec.ClinicID == clinicID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memSurgeryRepo) ListPage(ctx context.Context, clinicID string, limit, offset int) ([]entity.SurgeryRecord, error) {
	all, _ := m.ListByClinic(ctx, clinicID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memSurgeryRepo) UpdateClassification(_ context.Context, id, classification string) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Classification = classification
			return nil
		}
	}
	return domain.ErrNotFound
}

// memFixtureRepo inventario en memoria; registra las escrituras de campos calculados.
type memFixtureRepo struct {
	fixtures        []entity.Fixture
	computedUpdates int
}

func (m *memFixtureRepo) Create(_ context.Context, f *entity.Fixture) error {
	m.fixtures = append(m.fixtures, *f)
	return nil
}

func (m *memFixtureRepo) GetByID(_ context.Context, id string) (*entity.Fixture, error) {
	for i := range m.fixtures {
		if m.fixtures[i].ID == id {
			f := m.fixtures[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *memFixtureRepo) ListByClinic(_ context.Context, clinicID string) ([]entity.Fixture, error) {
	var out []entity.Fixture
	for _, f := range m.fixtures {
		if f.ClinicID == clinicID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFixtureRepo) Update(_ context.Context, f *entity.Fixture) error {
	for i := range m.fixtures {
		if m.fixtures[i].ID == f.ID {
			m.fixtures[i] = *f
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memFixtureRepo) UpdateComputed(_ context.Context, fixtures []entity.Fixture) error {
	m.computedUpdates++
	for _, f := range fixtures {
		for i := range m.fixtures {
			if m.fixtures[i].ID == f.ID {
				m.fixtures[i] = f
			}
		}
	}
	return nil
}

func (m *memFixtureRepo) Delete(_ context.Context, id string) error {
	for i := range m.fixtures {
		if m.fixtures[i].ID == id {
			m.fixtures = append(m.fixtures[:i], m.fixtures[i+1:]...)
			return nil
		}
	}
	return nil
}

// memOrderRepo pedidos en memoria.
type memOrderRepo struct {
	orders []entity.Order
}

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	m.orders = append(m.orders, *o)
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memOrderRepo) ListByClinic(_ context.Context, clinicID string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.orders {
		if o.ClinicID == clinicID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) MarkReceived(_ context.Context, id string, receivedDate time.Time) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = entity.OrderStatusReceived
			m.orders[i].ReceivedDate = &receivedDate
			return nil
		}
	}
	return domain.ErrNotFound
}

// memTxRunner ejecuta el callback directo sobre los repos en memoria (sin tx real).
type memTxRunner struct {
	fixtures *memFixtureRepo
	surgery  *memSurgeryRepo
	orders   *memOrderRepo
}

func (m *memTxRunner) Run(ctx context.Context, fn func(
	fixtureRepo repository.FixtureRepository,
	surgeryRepo repository.SurgeryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return fn(m.fixtures, m.surgery, m.orders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests IngestFile
// ──────────────────────────────────────────────────────────────────────────────

const clinicID = "clinic-1"

func buildIngest(rows []entity.RawRow, fixtures *memFixtureRepo, surgery *memSurgeryRepo) *inventory.IngestUseCase {
	tx := &memTxRunner{fixtures: fixtures, surgery: surgery, orders: &memOrderRepo{}}
	recompute := inventory.NewRecomputeUseCase(tx)
	return inventory.NewIngestUseCase(&fakeSheetReader{rows: rows}, surgery, recompute)
}

func TestIngestFile_ClasificaPersisteYRecalcula(t *testing.T) {
	fixtures := &memFixtureRepo{fixtures: []entity.Fixture{{
		ID: "f1", ClinicID: clinicID,
		Manufacturer: "오스템", Brand: "TS III", Size: "D:4.0 L:10", InitialStock: 10,
	}}}
	surgery := &memSurgeryRepo{}
	rows := []entity.RawRow{
		{"수술기록": "오스템-TS III D:4.0 L:10", "날짜": "2024-03-01", "치아번호": "36"},
		{"수술기록": "식립실패-오스템-TS III D:4.0 L:10", "날짜": "2024-03-02", "치아번호": "46"},
		{"제조사": "총계", "갯수": "57"},
	}
	uc := buildIngest(rows, fixtures, surgery)

	out, err := uc.IngestFile(context.Background(), clinicID, strings.NewReader("xlsx"))
	require.NoError(t, err)

	assert.Equal(t, 3, out.RowsRead, "se leen todas las filas")
	assert.Equal(t, 3, out.RowsIngested, "las filas de subtotal también se persisten")
	assert.Equal(t, 1, out.SubtotalRows, "la fila de total se detecta")
	assert.Equal(t, 1, out.ByClass[entity.ClassificationPlacement])
	assert.Equal(t, 1, out.ByClass[entity.ClassificationIntraopFail])
	assert.Equal(t, 1, out.FixturesScoped, "el inventario se recalcula")

	require.Len(t, surgery.records, 3)
	for _, rec := range surgery.records {
		assert.Equal(t, clinicID, rec.ClinicID)
		assert.NotEmpty(t, rec.ID)
	}

	// El recálculo refleja las dos cirugías (ambas consumen stock).
	f, err := fixtures.GetByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.UsageCount)
	assert.Equal(t, 8, f.CurrentStock)
	assert.Equal(t, 1, fixtures.computedUpdates, "un solo recálculo por ingesta")
}

func TestIngestFile_HojaVacia(t *testing.T) {
	uc := buildIngest(nil, &memFixtureRepo{}, &memSurgeryRepo{})

	_, err := uc.IngestFile(context.Background(), clinicID, strings.NewReader("xlsx"))
	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}

func TestIngestFile_SinFixturesNoFallaElRecalculo(t *testing.T) {
	surgery := &memSurgeryRepo{}
	rows := []entity.RawRow{{"수술기록": "오스템-TS III D:4.0 L:10", "날짜": "2024-03-01"}}
	uc := buildIngest(rows, &memFixtureRepo{}, surgery)

	out, err := uc.IngestFile(context.Background(), clinicID, strings.NewReader("xlsx"))
	require.NoError(t, err)
	assert.Equal(t, 0, out.FixturesScoped, "sin inventario no hay nada que recalcular")
	assert.Len(t, surgery.records, 1, "el log igual se persiste")
}
