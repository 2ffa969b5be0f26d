package mysql

import (
	"context"
	"time"

	covenantDomain "navlend-backend/internal/domain/covenant"

	"gorm.io/gorm"
)

type CovenantRepository struct{ db *gorm.DB }

func NewCovenantRepository(db *gorm.DB) *CovenantRepository { return &CovenantRepository{db: db} }

func (r *CovenantRepository) Create(ctx context.Context, c *covenantDomain.Covenant) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CovenantRepository) Save(ctx context.Context, c *covenantDomain.Covenant) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CovenantRepository) GetByCovenantID(ctx context.Context, covenantID string) (*covenantDomain.Covenant, error) {
	var out covenantDomain.Covenant
	res := r.db.WithContext(ctx).Where("covenant_id = ?", covenantID).First(&out)
	return &out, res.Error
}

func (r *CovenantRepository) ListByFacilityID(ctx context.Context, facilityID uint64) ([]*covenantDomain.Covenant, error) {
	var out []*covenantDomain.Covenant
	res := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// ListDue returns covenants never checked or whose check frequency has
// elapsed as of asOf. The frequency window is applied in Go because the
// interval arithmetic differs between the mysql and sqlite dialects.
func (r *CovenantRepository) ListDue(ctx context.Context, asOf time.Time) ([]*covenantDomain.Covenant, error) {
	var rows []*covenantDomain.Covenant
	res := r.db.WithContext(ctx).
		Where("last_checked IS NULL OR last_checked <= ?", asOf).
		Order("facility_id ASC, id ASC").
		Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}

	due := make([]*covenantDomain.Covenant, 0, len(rows))
	for _, c := range rows {
		if c.LastChecked == nil {
			due = append(due, c)
			continue
		}
		freq := c.CheckFrequencyDays
		if freq <= 0 {
			freq = covenantDomain.DefaultCheckFrequencyDays
		}
		if !c.LastChecked.After(asOf.AddDate(0, 0, -freq)) {
			due = append(due, c)
		}
	}
	return due, nil
}
