package covenant

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Covenant) error
	GetByCovenantID(ctx context.Context, covenantID string) (*Covenant, error)
	ListByFacilityID(ctx context.Context, facilityNumericID uint64) ([]*Covenant, error)
	// ListDue returns covenants whose last check is older than their check
	// frequency (or that were never checked), across all facilities.
	ListDue(ctx context.Context, asOf time.Time) ([]*Covenant, error)
	Save(ctx context.Context, c *Covenant) error
}
