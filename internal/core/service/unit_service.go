package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// UnitService implements CRUD over business units.
type UnitService struct {
	store ports.DocumentStore[domain.BusinessUnit]
}

func NewUnitService(store ports.DocumentStore[domain.BusinessUnit]) *UnitService {
	return &UnitService{store: store}
}

// ListPublic returns active units only.
func (s *UnitService) ListPublic(ctx context.Context) ([]*domain.BusinessUnit, error) {
	return s.store.Find(ctx, ports.Query{
		Filter: ports.Filter{"status": domain.UnitStatusActive},
		Limit:  publicListLimit,
	})
}

func (s *UnitService) Get(ctx context.Context, id string) (*domain.BusinessUnit, error) {
	return s.store.FindByID(ctx, id)
}

func (s *UnitService) Create(ctx context.Context, in ports.UnitInput) (*domain.BusinessUnit, error) {
	now := time.Now().UTC()
	unit := &domain.BusinessUnit{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Revenue:     in.Revenue,
		Contact:     in.Contact,
		TeamSize:    in.TeamSize,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.store.Insert(ctx, unit)
	if err != nil {
		return nil, err
	}
	unit.ID = id
	return unit, nil
}

func (s *UnitService) Update(ctx context.Context, id string, in ports.UnitInput) (*domain.BusinessUnit, error) {
	patch := ports.Fields{
		"name":        in.Name,
		"category":    in.Category,
		"description": in.Description,
		"revenue":     in.Revenue,
		"contact":     in.Contact,
		"team_size":   in.TeamSize,
		"status":      in.Status,
		"updated_at":  time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *UnitService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
