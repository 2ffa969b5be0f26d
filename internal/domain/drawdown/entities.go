package drawdown

import (
	"time"

	"gorm.io/gorm"
)

type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

// DrawRequest is a GP's ask to draw an amount against the facility's
// undrawn commitment. pending → approved bumps the facility's outstanding
// balance inside the same transaction.
type DrawRequest struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	DrawID string `gorm:"size:32;uniqueIndex:ux_draw_requests_draw_id_active" json:"draw_id"`
	// Numeric FK to facilities.id.
	FacilityID uint64 `gorm:"column:facility_id;not null;index:idx_draw_requests_facility" json:"-"`

	Amount  float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose string  `gorm:"type:text" json:"purpose,omitempty"`
	State   State   `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"state"`

	RequestedBy    string     `gorm:"size:32" json:"requested_by"`
	DecidedBy      string     `gorm:"size:32" json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	StateUpdatedAt time.Time  `gorm:"autoCreateTime" json:"state_updated_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (DrawRequest) TableName() string { return "draw_requests" }
