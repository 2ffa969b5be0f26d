package reportmock

import (
	"context"

	domain "navlend-backend/internal/domain/navreport"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, r *domain.Report) error
	GetLatestByFacilityIDFn func(ctx context.Context, facilityNumericID uint64) (*domain.Report, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Report) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetLatestByFacilityID(ctx context.Context, facilityNumericID uint64) (*domain.Report, error) {
	if m.GetLatestByFacilityIDFn != nil {
		return m.GetLatestByFacilityIDFn(ctx, facilityNumericID)
	}
	return nil, context.Canceled
}
