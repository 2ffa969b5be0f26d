package mysql

import (
	"context"

	drawdownDomain "navlend-backend/internal/domain/drawdown"

	"gorm.io/gorm"
)

type DrawRepository struct{ db *gorm.DB }

func NewDrawRepository(db *gorm.DB) *DrawRepository { return &DrawRepository{db: db} }

func (r *DrawRepository) Create(ctx context.Context, d *drawdownDomain.DrawRequest) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DrawRepository) Save(ctx context.Context, d *drawdownDomain.DrawRequest) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DrawRepository) GetByDrawID(ctx context.Context, drawID string) (*drawdownDomain.DrawRequest, error) {
	var out drawdownDomain.DrawRequest
	res := r.db.WithContext(ctx).Where("draw_id = ?", drawID).First(&out)
	return &out, res.Error
}

func (r *DrawRepository) GetPendingByFacilityID(ctx context.Context, facilityID uint64) (*drawdownDomain.DrawRequest, error) {
	var out drawdownDomain.DrawRequest
	res := r.db.WithContext(ctx).
		Where("facility_id = ? AND state = ?", facilityID, drawdownDomain.StatePending).
		Order("state_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}
