package facility

import "context"

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByFacilityID(ctx context.Context, facilityID string) (*Facility, error)
	// GetByFacilityIDForUpdate locks the row; only meaningful inside a
	// transaction (uow).
	GetByFacilityIDForUpdate(ctx context.Context, facilityID string) (*Facility, error)
	GetByID(ctx context.Context, id uint64) (*Facility, error)
	Save(ctx context.Context, f *Facility) error
}
