package db

import (
	"context"
)

const createNotification = `-- name: CreateNotification :one
INSERT INTO notifications (branch_id, type, title, message, request_id, reference_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, branch_id, type, title, message, is_read, request_id, reference_id, created_at
`

type CreateNotificationParams struct {
	BranchID    int64            `json:"branch_id"`
	Type        NotificationType `json:"type"`
	Title       *string          `json:"title"`
	Message     string           `json:"message"`
	RequestID   *int64           `json:"request_id"`
	ReferenceID *int64           `json:"reference_id"`
}

func (q *Queries) CreateNotification(ctx context.Context, arg CreateNotificationParams) (Notification, error) {
	row := q.db.QueryRow(ctx, createNotification,
		arg.BranchID,
		arg.Type,
		arg.Title,
		arg.Message,
		arg.RequestID,
		arg.ReferenceID,
	)
	var i Notification
	err := row.Scan(
		&i.ID,
		&i.BranchID,
		&i.Type,
		&i.Title,
		&i.Message,
		&i.IsRead,
		&i.RequestID,
		&i.ReferenceID,
		&i.CreatedAt,
	)
	return i, err
}

const listNotificationsByBranch = `-- name: ListNotificationsByBranch :many
SELECT id, branch_id, type, title, message, is_read, request_id, reference_id, created_at
FROM notifications
WHERE branch_id = $1
ORDER BY created_at DESC
LIMIT $2
`

type ListNotificationsByBranchParams struct {
	BranchID int64 `json:"branch_id"`
	Limit    int32 `json:"limit"`
}

func (q *Queries) ListNotificationsByBranch(ctx context.Context, arg ListNotificationsByBranchParams) ([]Notification, error) {
	rows, err := q.db.Query(ctx, listNotificationsByBranch, arg.BranchID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Notification{}
	for rows.Next() {
		var i Notification
		if err := rows.Scan(
			&i.ID,
			&i.BranchID,
			&i.Type,
			&i.Title,
			&i.Message,
			&i.IsRead,
			&i.RequestID,
			&i.ReferenceID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listLowStockNotifications = `-- name: ListLowStockNotifications :many
SELECT id, branch_id, type, title, message, is_read, request_id, reference_id, created_at
FROM notifications
WHERE branch_id = $1
  AND type = 'low_stock'
ORDER BY created_at DESC
LIMIT $2
`

func (q *Queries) ListLowStockNotifications(ctx context.Context, arg ListNotificationsByBranchParams) ([]Notification, error) {
	rows, err := q.db.Query(ctx, listLowStockNotifications, arg.BranchID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Notification{}
	for rows.Next() {
		var i Notification
		if err := rows.Scan(
			&i.ID,
			&i.BranchID,
			&i.Type,
			&i.Title,
			&i.Message,
			&i.IsRead,
			&i.RequestID,
			&i.ReferenceID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markBranchNotificationsRead = `-- name: MarkBranchNotificationsRead :execrows
UPDATE notifications
SET is_read = true
WHERE branch_id = $1
  AND is_read = false
`

func (q *Queries) MarkBranchNotificationsRead(ctx context.Context, branchID int64) (int64, error) {
	result, err := q.db.Exec(ctx, markBranchNotificationsRead, branchID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
