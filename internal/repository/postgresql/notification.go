package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/notification"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// CreateBatch implements notification.Repository.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, recipient_id, type, title, message, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, n := range notifications {
		data, err := json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		_, err = q.Exec(ctx, query,
			n.ID, n.RecipientID, n.Type, n.Title, n.Message, data, n.IsRead, n.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}
	return nil
}

// ListByRecipient implements notification.Repository.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
	`
	if unreadOnly {
		query += " AND NOT is_read"
	}
	query += " ORDER BY created_at DESC LIMIT 100"

	rows, err := q.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var data []byte
		err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Message, &data, &n.IsRead, &n.ReadAt, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
			}
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements notification.Repository.
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE id = $1 AND recipient_id = $2 AND NOT is_read
	`

	if _, err := q.Exec(ctx, query, id, recipientID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
