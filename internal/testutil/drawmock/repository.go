package drawmock

import (
	"context"

	domain "navlend-backend/internal/domain/drawdown"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, d *domain.DrawRequest) error
	GetByDrawIDFn            func(ctx context.Context, drawID string) (*domain.DrawRequest, error)
	GetPendingByFacilityIDFn func(ctx context.Context, facilityNumericID uint64) (*domain.DrawRequest, error)
	SaveFn                   func(ctx context.Context, d *domain.DrawRequest) error
}

func (m *Repo) Create(ctx context.Context, d *domain.DrawRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDrawID(ctx context.Context, drawID string) (*domain.DrawRequest, error) {
	if m.GetByDrawIDFn != nil {
		return m.GetByDrawIDFn(ctx, drawID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetPendingByFacilityID(ctx context.Context, facilityNumericID uint64) (*domain.DrawRequest, error) {
	if m.GetPendingByFacilityIDFn != nil {
		return m.GetPendingByFacilityIDFn(ctx, facilityNumericID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, d *domain.DrawRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
