package covenantmock

import (
	"context"
	"time"

	domain "navlend-backend/internal/domain/covenant"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Covenant) error
	GetByCovenantIDFn  func(ctx context.Context, covenantID string) (*domain.Covenant, error)
	ListByFacilityIDFn func(ctx context.Context, facilityNumericID uint64) ([]*domain.Covenant, error)
	ListDueFn          func(ctx context.Context, asOf time.Time) ([]*domain.Covenant, error)
	SaveFn             func(ctx context.Context, c *domain.Covenant) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Covenant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByCovenantID(ctx context.Context, covenantID string) (*domain.Covenant, error) {
	if m.GetByCovenantIDFn != nil {
		return m.GetByCovenantIDFn(ctx, covenantID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByFacilityID(ctx context.Context, facilityNumericID uint64) ([]*domain.Covenant, error) {
	if m.ListByFacilityIDFn != nil {
		return m.ListByFacilityIDFn(ctx, facilityNumericID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListDue(ctx context.Context, asOf time.Time) ([]*domain.Covenant, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, asOf)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Covenant) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
