package mysql

import (
	"context"

	facilityDomain "navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Facilities:    &FacilityRepository{db: tx},
		Covenants:     &CovenantRepository{db: tx},
		Draws:         &DrawRepository{db: tx},
		Reports:       &NAVReportRepository{db: tx},
		Notifications: &NotificationRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinFacilityTx(ctx context.Context, facilityID string, fn func(r uow.Repos, f *facilityDomain.Facility) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the facility row up-front to prevent races
		f, err := r.Facilities.GetByFacilityIDForUpdate(ctx, facilityID)
		if err != nil {
			return err
		}
		return fn(r, f)
	})
}
