package facility

import (
	"time"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Facility is a credit line extended to a fund, secured against its NAV.
type Facility struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	FacilityID string `gorm:"size:32;uniqueIndex:ux_facilities_facility_id_active" json:"facility_id"`
	FundName   string `gorm:"size:255" json:"fund_name"`

	// Parties. GPUserID is the facility owner for breach notifications;
	// it may be empty while ownership is unassigned.
	GPUserID      string `gorm:"size:32;index:idx_facilities_gp" json:"gp_user_id"`
	LenderUserID  string `gorm:"size:32;index:idx_facilities_lender" json:"lender_user_id"`
	AdvisorUserID string `gorm:"size:32" json:"advisor_user_id,omitempty"`

	CommitmentAmount   float64    `gorm:"type:decimal(18,2)" json:"commitment_amount"`
	OutstandingBalance float64    `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	InterestRate       float64    `gorm:"type:decimal(6,4)" json:"interest_rate"`
	MaturityDate       *time.Time `gorm:"type:date" json:"maturity_date,omitempty"`
	Status             Status     `gorm:"type:enum('active','closed');default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Facility) TableName() string { return "facilities" }

// OwnerUserID returns the designated breach-notification recipient and
// whether one is assigned.
func (f *Facility) OwnerUserID() (string, bool) {
	return f.GPUserID, f.GPUserID != ""
}

// AccessibleBy reports whether the actor may read this facility: any party
// to it, an admin, or the system.
func (f *Facility) AccessibleBy(a auth.Actor) bool {
	if a.Role == auth.RoleAdmin || a.IsSystem() {
		return true
	}
	switch a.UserID {
	case "":
		return false
	case f.GPUserID, f.LenderUserID, f.AdvisorUserID:
		return true
	}
	return false
}

// OwnedBy reports whether the actor is the facility's GP owner.
func (f *Facility) OwnedBy(a auth.Actor) bool {
	return f.GPUserID != "" && a.UserID == f.GPUserID
}

// Available returns the undrawn portion of the commitment.
func (f *Facility) Available() float64 {
	return f.CommitmentAmount - f.OutstandingBalance
}
