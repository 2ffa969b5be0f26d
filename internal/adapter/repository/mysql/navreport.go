package mysql

import (
	"context"

	navreportDomain "navlend-backend/internal/domain/navreport"

	"gorm.io/gorm"
)

type NAVReportRepository struct{ db *gorm.DB }

func NewNAVReportRepository(db *gorm.DB) *NAVReportRepository { return &NAVReportRepository{db: db} }

func (r *NAVReportRepository) Create(ctx context.Context, rep *navreportDomain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

// GetLatestByFacilityID returns the freshest report by as-of date,
// breaking ties by insertion order.
func (r *NAVReportRepository) GetLatestByFacilityID(ctx context.Context, facilityID uint64) (*navreportDomain.Report, error) {
	var out navreportDomain.Report
	res := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("as_of_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}
