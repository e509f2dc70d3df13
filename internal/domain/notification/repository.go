package notification

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

// Service accepts notifications from producers (the no-show scanner, the
// attendance service) and delivers them asynchronously.
type Service interface {
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error
	Stop()
}
