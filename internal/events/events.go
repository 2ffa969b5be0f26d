package events

import "context"

// Event topic constants. Downstream delivery workers (email/SMS fan-out,
// webhooks) subscribe to these subjects.
const (
	TopicCovenantBreach    = "navlend.covenant.breach"
	TopicCovenantRecovered = "navlend.covenant.recovered"
	TopicOwnerMissing      = "navlend.compliance.owner_missing"
	TopicDrawRequested     = "navlend.draw.requested"
	TopicDrawDecided       = "navlend.draw.decided"
)

// Event payloads

type CovenantBreach struct {
	FacilityID   string  `json:"facility_id"`
	CovenantID   string  `json:"covenant_id"`
	CovenantType string  `json:"covenant_type"`
	CurrentValue float64 `json:"current_value"`
	Operator     string  `json:"operator"`
	Threshold    float64 `json:"threshold"`
	OwnerUserID  string  `json:"owner_user_id,omitempty"`
}

type CovenantRecovered struct {
	FacilityID   string `json:"facility_id"`
	CovenantID   string `json:"covenant_id"`
	CovenantType string `json:"covenant_type"`
	NewStatus    string `json:"new_status"`
}

// OwnerMissing flags a breach whose facility has no assigned owner: the
// status was persisted but nobody was notified. Operational follow-up hook.
type OwnerMissing struct {
	FacilityID string `json:"facility_id"`
	CovenantID string `json:"covenant_id"`
}

type DrawRequested struct {
	FacilityID  string  `json:"facility_id"`
	DrawID      string  `json:"draw_id"`
	Amount      float64 `json:"amount"`
	RequestedBy string  `json:"requested_by"`
}

type DrawDecided struct {
	FacilityID string  `json:"facility_id"`
	DrawID     string  `json:"draw_id"`
	Amount     float64 `json:"amount"`
	State      string  `json:"state"`
	DecidedBy  string  `json:"decided_by"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
