package navreport

import (
	"time"

	"gorm.io/gorm"
)

// Report is a periodic NAV statement for a facility's fund. The latest
// report per facility is the metric source for scheduled and facility-wide
// compliance checks.
type Report struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ReportID string `gorm:"size:32;uniqueIndex:ux_nav_reports_report_id_active" json:"report_id"`
	// Numeric FK to facilities.id.
	FacilityID uint64 `gorm:"column:facility_id;not null;index:idx_nav_reports_facility" json:"-"`

	NAV                float64   `gorm:"type:decimal(18,2)" json:"nav"`
	LiquidAssets       float64   `gorm:"type:decimal(18,2)" json:"liquid_assets"`
	LargestPositionPct float64   `gorm:"type:decimal(6,2)" json:"largest_position_pct"`
	AsOfDate           time.Time `gorm:"type:date" json:"as_of_date"`
	SubmittedBy        string    `gorm:"size:32" json:"submitted_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Report) TableName() string { return "nav_reports" }
