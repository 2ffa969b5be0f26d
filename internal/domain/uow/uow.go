package uow

import (
	"context"

	"navlend-backend/internal/domain/covenant"
	"navlend-backend/internal/domain/drawdown"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/navreport"
	"navlend-backend/internal/domain/notification"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Facilities    facility.Repository
	Covenants     covenant.Repository
	Draws         drawdown.Repository
	Reports       navreport.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the facility row first, then pass it in
	WithinFacilityTx(ctx context.Context, facilityID string, fn func(r Repos, f *facility.Facility) error) error
}
