package compliance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/covenant"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/navreport"
	"navlend-backend/internal/domain/notification"
	"navlend-backend/internal/events"
	"navlend-backend/internal/metrics"
	"navlend-backend/pkg/id"
)

// Options tunes the compliance state manager.
type Options struct {
	// StickyBreachFlag preserves the legacy behavior where breach_notified
	// is never reset once set, so a covenant that recovers and breaches
	// again stays silent. Off by default: the flag clears whenever status
	// leaves breach, and each new breach episode notifies once.
	StickyBreachFlag bool
}

// Usecase is the compliance state manager: it evaluates covenants against
// resolved metric values, persists outcomes, and emits at most one breach
// notification per unresolved breach episode.
type Usecase struct {
	facilityRepo facility.Repository
	covenantRepo covenant.Repository
	reportRepo   navreport.Repository
	notifRepo    notification.Repository
	publisher    events.Publisher
	log          *slog.Logger
	opts         Options

	now func() time.Time
}

func NewUsecase(
	facilities facility.Repository,
	covenants covenant.Repository,
	reports navreport.Repository,
	notifications notification.Repository,
	pub events.Publisher,
	log *slog.Logger,
	opts Options,
) *Usecase {
	if pub == nil {
		pub = &events.NoopPublisher{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{
		facilityRepo: facilities,
		covenantRepo: covenants,
		reportRepo:   reports,
		notifRepo:    notifications,
		publisher:    pub,
		log:          log,
		opts:         opts,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CheckFacility evaluates every covenant of the facility against metrics
// resolved from the facility and its latest NAV report. One covenant's
// failure never aborts its siblings; the per-covenant outcome is in the
// returned slice.
func (u *Usecase) CheckFacility(ctx context.Context, a auth.Actor, facilityID string) ([]CheckResult, error) {
	f, err := u.facilityRepo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, facility.ErrNotFound
		}
		return nil, err
	}
	if !a.CanRunChecks() && !f.AccessibleBy(a) {
		return nil, auth.ErrForbidden
	}

	covs, err := u.covenantRepo.ListByFacilityID(ctx, f.ID)
	if err != nil {
		return nil, err
	}

	vals := u.resolveMetrics(ctx, f)
	results := make([]CheckResult, 0, len(covs))
	for _, c := range covs {
		results = append(results, u.checkOne(ctx, f, c, vals[c.CovenantType]))
	}
	return results, nil
}

// CheckCovenant runs a manual one-off check of a single covenant with an
// explicitly supplied value.
func (u *Usecase) CheckCovenant(ctx context.Context, a auth.Actor, covenantID string, currentValue float64) (CheckResult, error) {
	c, err := u.covenantRepo.GetByCovenantID(ctx, covenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckResult{}, covenant.ErrNotFound
		}
		return CheckResult{}, err
	}
	f, err := u.facilityRepo.GetByID(ctx, c.FacilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckResult{}, facility.ErrNotFound
		}
		return CheckResult{}, err
	}
	if !a.CanRunChecks() && !f.AccessibleBy(a) {
		return CheckResult{}, auth.ErrForbidden
	}
	return u.checkOne(ctx, f, c, &currentValue), nil
}

// CheckDue evaluates every covenant whose check frequency has elapsed as of
// asOf, across all facilities. Scheduler entry point; runs as the system
// actor.
func (u *Usecase) CheckDue(ctx context.Context, asOf time.Time) ([]CheckResult, error) {
	metrics.DueRunsTotal.Inc()

	covs, err := u.covenantRepo.ListDue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	// Facilities and their metric values are cached per run; ListDue orders
	// by facility so each is resolved once.
	facilities := map[uint64]*facility.Facility{}
	values := map[uint64]map[string]*float64{}

	results := make([]CheckResult, 0, len(covs))
	for _, c := range covs {
		f, ok := facilities[c.FacilityID]
		if !ok {
			var err error
			f, err = u.facilityRepo.GetByID(ctx, c.FacilityID)
			if err != nil {
				results = append(results, CheckResult{
					CovenantID:   c.CovenantID,
					CovenantType: c.CovenantType,
					Error:        fmt.Sprintf("loading facility: %v", err),
				})
				metrics.ChecksTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
				continue
			}
			facilities[c.FacilityID] = f
			values[c.FacilityID] = u.resolveMetrics(ctx, f)
		}
		results = append(results, u.checkOne(ctx, f, c, values[c.FacilityID][c.CovenantType]))
	}
	return results, nil
}

// resolveMetrics maps well-known covenant type labels to values derived
// from the facility and its latest NAV report. Unknown labels are absent
// from the map, which the checker treats as "no data". No report means no
// values at all.
func (u *Usecase) resolveMetrics(ctx context.Context, f *facility.Facility) map[string]*float64 {
	rep, err := u.reportRepo.GetLatestByFacilityID(ctx, f.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			u.log.Warn("loading latest NAV report", "facility_id", f.FacilityID, "err", err)
		}
		return nil
	}

	vals := map[string]*float64{
		covenant.TypeMinimumNAV:      ptr(rep.NAV),
		covenant.TypeLiquidity:       ptr(rep.LiquidAssets),
		covenant.TypeDiversification: ptr(rep.LargestPositionPct),
	}
	if rep.NAV > 0 {
		vals[covenant.TypeLTVRatio] = ptr(f.OutstandingBalance / rep.NAV * 100)
	}
	return vals
}

// checkOne evaluates a single covenant and persists the outcome. A nil or
// non-finite value skips the covenant entirely: no data, no judgment — the
// prior status and last_checked stand. The status write is one row update;
// the breach_notified flip after a successful notification is a second one,
// so a notification failure leaves the flag false and the next check
// retries.
func (u *Usecase) checkOne(ctx context.Context, f *facility.Facility, c *covenant.Covenant, value *float64) CheckResult {
	if value == nil {
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return skippedResult(c, "no metric value available")
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return skippedResult(c, "metric value is not a finite number")
	}

	wasBreach := c.InBreach()
	newStatus := covenant.Evaluate(*value, c.ThresholdOperator, c.ThresholdValue)
	now := u.now()

	c.CurrentValue = value
	c.Status = &newStatus
	c.LastChecked = &now
	if wasBreach && newStatus != covenant.StatusBreach && !u.opts.StickyBreachFlag {
		c.BreachNotified = false
	}

	res := CheckResult{
		CovenantID:   c.CovenantID,
		CovenantType: c.CovenantType,
		Status:       string(newStatus),
		CurrentValue: value,
		CheckedAt:    &now,
	}

	if err := u.covenantRepo.Save(ctx, c); err != nil {
		u.log.Error("persisting covenant check",
			"facility_id", f.FacilityID, "covenant_id", c.CovenantID, "err", err)
		metrics.ChecksTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		res.Error = err.Error()
		return res
	}
	metrics.ChecksTotal.WithLabelValues(string(newStatus)).Inc()

	if wasBreach && newStatus != covenant.StatusBreach {
		u.publish(ctx, events.TopicCovenantRecovered, events.CovenantRecovered{
			FacilityID:   f.FacilityID,
			CovenantID:   c.CovenantID,
			CovenantType: c.CovenantType,
			NewStatus:    string(newStatus),
		})
	}

	if newStatus == covenant.StatusBreach && !c.BreachNotified {
		res.Notified = u.notifyBreach(ctx, f, c, *value)
	}
	return res
}

// notifyBreach handles a first breach of an episode: publish the breach
// event, record exactly one urgent notification to the facility owner, and
// set breach_notified to suppress repeats while still in breach. Reports
// whether a notification was recorded.
func (u *Usecase) notifyBreach(ctx context.Context, f *facility.Facility, c *covenant.Covenant, value float64) bool {
	owner, hasOwner := f.OwnerUserID()

	u.publish(ctx, events.TopicCovenantBreach, events.CovenantBreach{
		FacilityID:   f.FacilityID,
		CovenantID:   c.CovenantID,
		CovenantType: c.CovenantType,
		CurrentValue: value,
		Operator:     string(c.ThresholdOperator),
		Threshold:    c.ThresholdValue,
		OwnerUserID:  owner,
	})

	if !hasOwner {
		// The status change already persisted; the missing notification must
		// not be silent. Log and raise the operational event for follow-up.
		u.log.Warn("covenant breach with no facility owner, nobody notified",
			"facility_id", f.FacilityID, "covenant_id", c.CovenantID)
		u.publish(ctx, events.TopicOwnerMissing, events.OwnerMissing{
			FacilityID: f.FacilityID,
			CovenantID: c.CovenantID,
		})
		metrics.BreachNotificationsTotal.WithLabelValues(metrics.NotifyNoOwner).Inc()
		return false
	}

	n := &notification.Notification{
		NotificationID:  id.NewID32(),
		RecipientUserID: owner,
		Type:            notification.TypeCovenantBreach,
		Title:           fmt.Sprintf("Covenant breach: %s", c.CovenantType),
		Message: fmt.Sprintf("Covenant %s on facility %s is in breach: current value %.4f violates %s %.4f.",
			c.CovenantType, f.FundName, value, c.ThresholdOperator, c.ThresholdValue),
		RelatedEntityID: c.CovenantID,
		Priority:        notification.PriorityUrgent,
	}
	if err := u.notifRepo.Create(ctx, n); err != nil {
		// Flag stays false so the next check retries the notification.
		u.log.Error("recording breach notification",
			"facility_id", f.FacilityID, "covenant_id", c.CovenantID, "err", err)
		metrics.BreachNotificationsTotal.WithLabelValues(metrics.NotifyFailed).Inc()
		return false
	}

	c.BreachNotified = true
	if err := u.covenantRepo.Save(ctx, c); err != nil {
		// Worst case the next check sends a duplicate; better than never
		// notifying again.
		u.log.Error("persisting breach_notified flag",
			"covenant_id", c.CovenantID, "err", err)
	}
	metrics.BreachNotificationsTotal.WithLabelValues(metrics.NotifySent).Inc()
	return true
}

func (u *Usecase) publish(ctx context.Context, topic string, ev any) {
	if err := u.publisher.Publish(ctx, topic, ev); err != nil {
		u.log.Warn("publishing event", "topic", topic, "err", err)
	}
}

func ptr(f float64) *float64 { return &f }
