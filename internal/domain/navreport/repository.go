package navreport

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("nav report not found")

type Repository interface {
	Create(ctx context.Context, r *Report) error
	// GetLatestByFacilityID returns the newest report by as_of_date
	// (ties broken by insertion order).
	GetLatestByFacilityID(ctx context.Context, facilityNumericID uint64) (*Report, error)
}
