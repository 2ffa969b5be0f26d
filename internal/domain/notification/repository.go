package notification

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByNotificationID(ctx context.Context, notificationID string) (*Notification, error)
	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientUserID string, limit int) ([]*Notification, error)
	Save(ctx context.Context, n *Notification) error
}
