package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeNoShowDetected   NotificationType = "no_show_detected"
	TypeNoShowResolved   NotificationType = "no_show_resolved"
	TypeLateClockIn      NotificationType = "late_clock_in"
	TypeOverrideUsed     NotificationType = "override_used"
	TypeRestPeriodBreach NotificationType = "rest_period_breach"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// CreateNotificationRequest is what producers enqueue.
type CreateNotificationRequest struct {
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
}
