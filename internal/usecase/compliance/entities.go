package compliance

import (
	"time"

	"navlend-backend/internal/domain/covenant"
)

// CheckResult reports the outcome of evaluating one covenant. Batch
// operations return one entry per covenant so callers can tell partial
// failures apart from full success.
type CheckResult struct {
	CovenantID   string   `json:"covenant_id"`
	CovenantType string   `json:"covenant_type"`
	Status       string   `json:"status,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	// Skipped is true when no usable metric value was available; the
	// covenant keeps its prior status and last_checked.
	Skipped    bool       `json:"skipped,omitempty"`
	SkipReason string     `json:"skip_reason,omitempty"`
	Notified   bool       `json:"notified,omitempty"`
	CheckedAt  *time.Time `json:"checked_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func (r CheckResult) Failed() bool { return r.Error != "" }

func skippedResult(c *covenant.Covenant, reason string) CheckResult {
	return CheckResult{
		CovenantID:   c.CovenantID,
		CovenantType: c.CovenantType,
		Skipped:      true,
		SkipReason:   reason,
	}
}
