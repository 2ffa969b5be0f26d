package facilitymock

import (
	domain "navlend-backend/internal/domain/facility"
	"context"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                   func(ctx context.Context, f *domain.Facility) error
	GetByFacilityIDFn          func(ctx context.Context, facilityID string) (*domain.Facility, error)
	GetByFacilityIDForUpdateFn func(ctx context.Context, facilityID string) (*domain.Facility, error)
	GetByIDFn                  func(ctx context.Context, id uint64) (*domain.Facility, error)
	SaveFn                     func(ctx context.Context, f *domain.Facility) error
}

func (m *Repo) Create(ctx context.Context, f *domain.Facility) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}
func (m *Repo) GetByFacilityID(ctx context.Context, facilityID string) (*domain.Facility, error) {
	if m.GetByFacilityIDFn != nil {
		return m.GetByFacilityIDFn(ctx, facilityID)
	}
	return nil, context.Canceled // or errors.New("not implemented")
}
func (m *Repo) GetByFacilityIDForUpdate(ctx context.Context, facilityID string) (*domain.Facility, error) {
	if m.GetByFacilityIDForUpdateFn != nil {
		return m.GetByFacilityIDForUpdateFn(ctx, facilityID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Facility, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, f *domain.Facility) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}
