package drawdown

import "context"

type Repository interface {
	Create(ctx context.Context, d *DrawRequest) error
	GetByDrawID(ctx context.Context, drawID string) (*DrawRequest, error)
	// GetPendingByFacilityID returns the newest pending draw for a facility.
	GetPendingByFacilityID(ctx context.Context, facilityNumericID uint64) (*DrawRequest, error)
	Save(ctx context.Context, d *DrawRequest) error
}
