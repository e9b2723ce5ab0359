package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// ClinicUseCase alta y consulta de clínicas (tenants).
type ClinicUseCase struct {
	repo repository.ClinicRepository
}

// NewClinicUseCase construye el caso de uso.
func NewClinicUseCase(repo repository.ClinicRepository) *ClinicUseCase {
	return &ClinicUseCase{repo: repo}
}

// Create da de alta una clínica en estado active.
func (uc *ClinicUseCase) Create(ctx context.Context, in dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Clinic{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClinicResponse(c), nil
}

// GetByID obtiene una clínica por ID.
func (uc *ClinicUseCase) GetByID(ctx context.Context, id string) (*dto.ClinicResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClinicResponse(c), nil
}

// List lista clínicas con paginación.
func (uc *ClinicUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ClinicResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClinicResponse, 0, len(list))
	for i := range list {
		items = append(items, *toClinicResponse(&list[i]))
	}
	return items, nil
}

func toClinicResponse(c *entity.Clinic) *dto.ClinicResponse {
	if c == nil {
		return nil
	}
	return &dto.ClinicResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
