package notification

import (
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeCovenantBreach Type = "covenant_breach"
	TypeDrawRequested  Type = "draw_requested"
	TypeDrawDecided    Type = "draw_decided"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

// Notification is an in-app notification record. Delivery fan-out (email,
// SMS) is downstream of this table and the event bus.
type Notification struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string `gorm:"size:32;uniqueIndex:ux_notifications_notification_id_active" json:"notification_id"`

	RecipientUserID string   `gorm:"size:32;not null;index:idx_notifications_recipient" json:"recipient_user_id"`
	Type            Type     `gorm:"size:32;not null" json:"type"`
	Title           string   `gorm:"size:255" json:"title"`
	Message         string   `gorm:"type:text" json:"message"`
	RelatedEntityID string   `gorm:"size:32;index" json:"related_entity_id,omitempty"`
	Priority        Priority `gorm:"type:enum('urgent','high','normal');default:'normal'" json:"priority"`

	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
