package covenant

import (
	"time"

	"gorm.io/gorm"
)

// Operator is the comparison a covenant holds the measured value to.
type Operator string

const (
	OpLessThan         Operator = "less_than"
	OpLessThanEqual    Operator = "less_than_equal"
	OpGreaterThan      Operator = "greater_than"
	OpGreaterThanEqual Operator = "greater_than_equal"
)

func (o Operator) Valid() bool {
	switch o {
	case OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual:
		return true
	}
	return false
}

// Status is the compliance state computed by the last check. A covenant with
// a nil status has never been checked.
type Status string

const (
	StatusCompliant Status = "compliant"
	StatusWarning   Status = "warning"
	StatusBreach    Status = "breach"
)

// Well-known covenant type labels. The column itself is free-form; these are
// the labels the metric resolver understands.
const (
	TypeLTVRatio        = "ltv_ratio"
	TypeMinimumNAV      = "minimum_nav"
	TypeLiquidity       = "liquidity"
	TypeDiversification = "diversification"
)

const DefaultCheckFrequencyDays = 90

// Covenant is a compliance rule attached to a credit facility.
// Threshold fields are edited administratively; current_value, status,
// last_checked and breach_notified mutate only through the check routine.
type Covenant struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CovenantID string `gorm:"size:32;uniqueIndex:ux_covenants_covenant_id_active" json:"covenant_id"`
	// Numeric FK to facilities.id.
	FacilityID uint64 `gorm:"column:facility_id;not null;index:idx_covenants_facility" json:"-"`

	CovenantType      string   `gorm:"size:64" json:"covenant_type"`
	ThresholdOperator Operator `gorm:"type:enum('less_than','less_than_equal','greater_than','greater_than_equal')" json:"threshold_operator"`
	ThresholdValue    float64  `gorm:"type:decimal(18,4)" json:"threshold_value"`

	CurrentValue       *float64   `gorm:"type:decimal(18,4)" json:"current_value,omitempty"`
	Status             *Status    `gorm:"type:enum('compliant','warning','breach')" json:"status,omitempty"`
	BreachNotified     bool       `gorm:"default:false" json:"breach_notified"`
	LastChecked        *time.Time `json:"last_checked,omitempty"`
	CheckFrequencyDays int        `gorm:"default:90" json:"check_frequency_days"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Covenant) TableName() string { return "covenants" }

// InBreach reports whether the covenant's last check found a breach.
func (c *Covenant) InBreach() bool {
	return c.Status != nil && *c.Status == StatusBreach
}
