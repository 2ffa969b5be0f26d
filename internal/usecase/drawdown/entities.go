package drawdown

import (
	"time"

	"navlend-backend/internal/domain/drawdown"
)

type SubmitInput struct {
	Amount  float64 `json:"amount"`
	Purpose string  `json:"purpose"`
}

type DrawDTO struct {
	DrawID         string     `json:"draw_id"`
	FacilityID     string     `json:"facility_id"`
	Amount         float64    `json:"amount"`
	Purpose        string     `json:"purpose,omitempty"`
	State          string     `json:"state"`
	RequestedBy    string     `json:"requested_by"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	StateUpdatedAt time.Time  `json:"state_updated_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toDTO(d *drawdown.DrawRequest, facilityPublicID string) *DrawDTO {
	return &DrawDTO{
		DrawID:         d.DrawID,
		FacilityID:     facilityPublicID,
		Amount:         d.Amount,
		Purpose:        d.Purpose,
		State:          string(d.State),
		RequestedBy:    d.RequestedBy,
		DecidedBy:      d.DecidedBy,
		DecidedAt:      d.DecidedAt,
		StateUpdatedAt: d.StateUpdatedAt,
		CreatedAt:      d.CreatedAt,
	}
}
