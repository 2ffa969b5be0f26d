package facility

import (
	"time"

	"navlend-backend/internal/domain/covenant"
	"navlend-backend/internal/domain/facility"
)

type CreateFacilityInput struct {
	FundName         string     `json:"fund_name"`
	GPUserID         string     `json:"gp_user_id"`
	LenderUserID     string     `json:"lender_user_id"`
	AdvisorUserID    string     `json:"advisor_user_id"`
	CommitmentAmount float64    `json:"commitment_amount"`
	InterestRate     float64    `json:"interest_rate"`
	MaturityDate     *time.Time `json:"maturity_date"`
}

type AddCovenantInput struct {
	CovenantType       string  `json:"covenant_type"`
	ThresholdOperator  string  `json:"threshold_operator"`
	ThresholdValue     float64 `json:"threshold_value"`
	CheckFrequencyDays int     `json:"check_frequency_days"`
}

// AmendCovenantInput carries a partial update of threshold fields. Nil
// means "leave as is". Check fields (status, current value, flag) are
// never editable here.
type AmendCovenantInput struct {
	ThresholdOperator  *string  `json:"threshold_operator"`
	ThresholdValue     *float64 `json:"threshold_value"`
	CheckFrequencyDays *int     `json:"check_frequency_days"`
}

type FacilityDTO struct {
	FacilityID         string     `json:"facility_id"`
	FundName           string     `json:"fund_name"`
	GPUserID           string     `json:"gp_user_id"`
	LenderUserID       string     `json:"lender_user_id"`
	AdvisorUserID      string     `json:"advisor_user_id,omitempty"`
	CommitmentAmount   float64    `json:"commitment_amount"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	InterestRate       float64    `json:"interest_rate"`
	MaturityDate       *time.Time `json:"maturity_date,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}

type CovenantDTO struct {
	CovenantID         string     `json:"covenant_id"`
	FacilityID         string     `json:"facility_id"`
	CovenantType       string     `json:"covenant_type"`
	ThresholdOperator  string     `json:"threshold_operator"`
	ThresholdValue     float64    `json:"threshold_value"`
	CurrentValue       *float64   `json:"current_value,omitempty"`
	Status             string     `json:"status,omitempty"`
	BreachNotified     bool       `json:"breach_notified"`
	LastChecked        *time.Time `json:"last_checked,omitempty"`
	CheckFrequencyDays int        `json:"check_frequency_days"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toFacilityDTO(f *facility.Facility) *FacilityDTO {
	return &FacilityDTO{
		FacilityID:         f.FacilityID,
		FundName:           f.FundName,
		GPUserID:           f.GPUserID,
		LenderUserID:       f.LenderUserID,
		AdvisorUserID:      f.AdvisorUserID,
		CommitmentAmount:   f.CommitmentAmount,
		OutstandingBalance: f.OutstandingBalance,
		InterestRate:       f.InterestRate,
		MaturityDate:       f.MaturityDate,
		Status:             string(f.Status),
		CreatedAt:          f.CreatedAt,
	}
}

func toCovenantDTO(c *covenant.Covenant, facilityPublicID string) *CovenantDTO {
	dto := &CovenantDTO{
		CovenantID:         c.CovenantID,
		FacilityID:         facilityPublicID,
		CovenantType:       c.CovenantType,
		ThresholdOperator:  string(c.ThresholdOperator),
		ThresholdValue:     c.ThresholdValue,
		CurrentValue:       c.CurrentValue,
		BreachNotified:     c.BreachNotified,
		LastChecked:        c.LastChecked,
		CheckFrequencyDays: c.CheckFrequencyDays,
		CreatedAt:          c.CreatedAt,
	}
	if c.Status != nil {
		dto.Status = string(*c.Status)
	}
	return dto
}
