package notification

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"navlend-backend/internal/auth"
	"navlend-backend/internal/domain/notification"
)

// listLimit caps a single inbox page.
const listLimit = 100

type Usecase struct {
	repo notification.Repository

	now func() time.Time
}

func NewUsecase(repo notification.Repository) *Usecase {
	return &Usecase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

type NotificationDTO struct {
	NotificationID  string     `json:"notification_id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	RelatedEntityID string     `json:"related_entity_id,omitempty"`
	Priority        string     `json:"priority"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// List returns the actor's own notifications, newest first.
func (u *Usecase) List(ctx context.Context, a auth.Actor) ([]*NotificationDTO, error) {
	rows, err := u.repo.ListByRecipient(ctx, a.UserID, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*NotificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, toDTO(n))
	}
	return out, nil
}

// MarkRead stamps a notification read. Recipient only; reading twice is a
// no-op that keeps the original timestamp.
func (u *Usecase) MarkRead(ctx context.Context, a auth.Actor, notificationID string) (*NotificationDTO, error) {
	n, err := u.repo.GetByNotificationID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotFound
		}
		return nil, err
	}
	if n.RecipientUserID != a.UserID {
		return nil, auth.ErrForbidden
	}
	if n.ReadAt == nil {
		now := u.now()
		n.ReadAt = &now
		if err := u.repo.Save(ctx, n); err != nil {
			return nil, err
		}
	}
	return toDTO(n), nil
}

func toDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		NotificationID:  n.NotificationID,
		Type:            string(n.Type),
		Title:           n.Title,
		Message:         n.Message,
		RelatedEntityID: n.RelatedEntityID,
		Priority:        string(n.Priority),
		ReadAt:          n.ReadAt,
		CreatedAt:       n.CreatedAt,
	}
}
