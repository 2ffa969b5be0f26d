package mysql

import (
	"context"

	facilityDomain "navlend-backend/internal/domain/facility"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FacilityRepository struct{ db *gorm.DB }

func NewFacilityRepository(db *gorm.DB) *FacilityRepository { return &FacilityRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *FacilityRepository) Tx(ctx context.Context, fn func(repo facilityDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FacilityRepository{db: tx})
	})
}

func (r *FacilityRepository) Create(ctx context.Context, f *facilityDomain.Facility) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FacilityRepository) Save(ctx context.Context, f *facilityDomain.Facility) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FacilityRepository) GetByFacilityID(ctx context.Context, facilityID string) (*facilityDomain.Facility, error) {
	var out facilityDomain.Facility
	res := r.db.WithContext(ctx).Where("facility_id = ?", facilityID).First(&out)
	return &out, res.Error
}

// GetByFacilityIDForUpdate locks the facility row (SELECT ... FOR UPDATE).
// Call inside a transaction; outside one the lock is released immediately.
func (r *FacilityRepository) GetByFacilityIDForUpdate(ctx context.Context, facilityID string) (*facilityDomain.Facility, error) {
	var out facilityDomain.Facility
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("facility_id = ?", facilityID).
		First(&out)
	return &out, res.Error
}

func (r *FacilityRepository) GetByID(ctx context.Context, id uint64) (*facilityDomain.Facility, error) {
	var out facilityDomain.Facility
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}
