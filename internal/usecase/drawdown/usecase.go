package drawdown

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/drawdown"
	"navlend-backend/internal/domain/facility"
	"navlend-backend/internal/domain/notification"
	"navlend-backend/internal/domain/uow"
	"navlend-backend/internal/events"
	"navlend-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid draw request input")

type Usecase struct {
	uow          uow.UnitOfWork
	drawRepo     drawdown.Repository
	facilityRepo facility.Repository
	publisher    events.Publisher
	log          *slog.Logger

	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, draws drawdown.Repository, facilities facility.Repository, pub events.Publisher, log *slog.Logger) *Usecase {
	if pub == nil {
		pub = &events.NoopPublisher{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{
		uow:          tx,
		drawRepo:     draws,
		facilityRepo: facilities,
		publisher:    pub,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit files a draw request against the facility's undrawn commitment.
// The facility row is locked for the duration so the pending-draw and
// headroom guards cannot race a concurrent approval.
func (u *Usecase) Submit(ctx context.Context, a auth.Actor, facilityID string, in SubmitInput) (*DrawDTO, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	var dto *DrawDTO
	var lenderID string
	err := u.uow.WithinFacilityTx(ctx, facilityID, func(r uow.Repos, f *facility.Facility) error {
		if !f.OwnedBy(a) {
			return auth.ErrForbidden
		}
		if f.Status != facility.StatusActive {
			return facility.ErrClosed
		}

		// One pending draw per facility.
		if _, err := r.Draws.GetPendingByFacilityID(ctx, f.ID); err == nil {
			return drawdown.ErrPendingExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if in.Amount > f.Available() {
			return drawdown.ErrExceedsCommitment
		}

		d := &drawdown.DrawRequest{
			DrawID:         id.NewID32(),
			FacilityID:     f.ID,
			Amount:         in.Amount,
			Purpose:        in.Purpose,
			State:          drawdown.StatePending,
			RequestedBy:    a.UserID,
			StateUpdatedAt: u.now(),
		}
		if err := r.Draws.Create(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d, f.FacilityID)
		lenderID = f.LenderUserID
		return nil
	})
	if err != nil {
		return nil, mapFacilityErr(err)
	}

	// Outside the tx: the draw is in regardless of whether anyone hears
	// about it.
	u.notify(ctx, lenderID, notification.TypeDrawRequested, notification.PriorityHigh,
		"Draw request submitted",
		"A draw request for the facility is awaiting your decision.", dto.DrawID)
	u.publish(ctx, events.TopicDrawRequested, events.DrawRequested{
		FacilityID:  dto.FacilityID,
		DrawID:      dto.DrawID,
		Amount:      dto.Amount,
		RequestedBy: dto.RequestedBy,
	})
	return dto, nil
}

// Approve moves a pending draw to approved and funds it: inside one
// transaction the facility row is locked, the pending state and remaining
// commitment are re-checked, and the outstanding balance is bumped.
func (u *Usecase) Approve(ctx context.Context, a auth.Actor, drawID string) (*DrawDTO, error) {
	return u.decide(ctx, a, drawID, drawdown.StateApproved)
}

// Reject moves a pending draw to rejected. No balance change.
func (u *Usecase) Reject(ctx context.Context, a auth.Actor, drawID string) (*DrawDTO, error) {
	return u.decide(ctx, a, drawID, drawdown.StateRejected)
}

func (u *Usecase) decide(ctx context.Context, a auth.Actor, drawID string, target drawdown.State) (*DrawDTO, error) {
	if !a.CanDecideDraws() {
		return nil, auth.ErrForbidden
	}

	// Resolve the owning facility first; the lock is taken by public
	// facility id inside the transaction.
	d, err := u.drawRepo.GetByDrawID(ctx, drawID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, drawdown.ErrNotFound
		}
		return nil, err
	}
	owning, err := u.facilityRepo.GetByID(ctx, d.FacilityID)
	if err != nil {
		return nil, err
	}

	var dto *DrawDTO
	var requesterID string
	err = u.uow.WithinFacilityTx(ctx, owning.FacilityID, func(r uow.Repos, f *facility.Facility) error {
		// Re-read under the lock; the snapshot above may be stale.
		d, err := r.Draws.GetByDrawID(ctx, drawID)
		if err != nil {
			return err
		}
		if d.State != drawdown.StatePending {
			return drawdown.ErrAlreadyDecided
		}

		if target == drawdown.StateApproved {
			if f.Status != facility.StatusActive {
				return facility.ErrClosed
			}
			if d.Amount > f.Available() {
				return drawdown.ErrExceedsCommitment
			}
			f.OutstandingBalance += d.Amount
			if err := r.Facilities.Save(ctx, f); err != nil {
				return err
			}
		}

		now := u.now()
		d.State = target
		d.DecidedBy = a.UserID
		d.DecidedAt = &now
		d.StateUpdatedAt = now
		if err := r.Draws.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d, f.FacilityID)
		requesterID = d.RequestedBy
		return nil
	})
	if err != nil {
		return nil, mapFacilityErr(err)
	}

	u.notify(ctx, requesterID, notification.TypeDrawDecided, notification.PriorityNormal,
		"Draw request "+string(target),
		"Your draw request was "+string(target)+".", dto.DrawID)
	u.publish(ctx, events.TopicDrawDecided, events.DrawDecided{
		FacilityID: dto.FacilityID,
		DrawID:     dto.DrawID,
		Amount:     dto.Amount,
		State:      string(target),
		DecidedBy:  a.UserID,
	})
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, a auth.Actor, drawID string) (*DrawDTO, error) {
	d, err := u.drawRepo.GetByDrawID(ctx, drawID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, drawdown.ErrNotFound
		}
		return nil, err
	}
	f, err := u.facilityRepo.GetByID(ctx, d.FacilityID)
	if err != nil {
		return nil, err
	}
	if !f.AccessibleBy(a) {
		return nil, auth.ErrForbidden
	}
	return toDTO(d, f.FacilityID), nil
}

// notify records a best-effort in-app notification. Failures are logged,
// never propagated: the draw state change already happened.
func (u *Usecase) notify(ctx context.Context, recipient string, typ notification.Type, prio notification.Priority, title, message, relatedID string) {
	if recipient == "" {
		return
	}
	n := &notification.Notification{
		NotificationID:  id.NewID32(),
		RecipientUserID: recipient,
		Type:            typ,
		Title:           title,
		Message:         message,
		RelatedEntityID: relatedID,
		Priority:        prio,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Notifications.Create(ctx, n)
	})
	if err != nil {
		u.log.Warn("recording draw notification", "recipient", recipient, "type", typ, "err", err)
	}
}

func (u *Usecase) publish(ctx context.Context, topic string, ev any) {
	if err := u.publisher.Publish(ctx, topic, ev); err != nil {
		u.log.Warn("publishing event", "topic", topic, "err", err)
	}
}

func mapFacilityErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return facility.ErrNotFound
	}
	return err
}
