package db

import (
	"context"
)

const branchRequestColumns = `id, from_branch_id, to_branch_id, medicine_id, quantity_requested, status, decided_by, created_at, updated_at`

func scanBranchRequest(row interface{ Scan(dest ...interface{}) error }) (BranchRequest, error) {
	var i BranchRequest
	err := row.Scan(
		&i.ID,
		&i.FromBranchID,
		&i.ToBranchID,
		&i.MedicineID,
		&i.QuantityRequested,
		&i.Status,
		&i.DecidedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBranchRequest = `-- name: CreateBranchRequest :one
INSERT INTO branch_requests (from_branch_id, to_branch_id, medicine_id, quantity_requested, status)
VALUES ($1, $2, $3, $4, 'pending')
RETURNING ` + branchRequestColumns

type CreateBranchRequestParams struct {
	FromBranchID      int64 `json:"from_branch_id"`
	ToBranchID        int64 `json:"to_branch_id"`
	MedicineID        int64 `json:"medicine_id"`
	QuantityRequested int32 `json:"quantity_requested"`
}

func (q *Queries) CreateBranchRequest(ctx context.Context, arg CreateBranchRequestParams) (BranchRequest, error) {
	row := q.db.QueryRow(ctx, createBranchRequest,
		arg.FromBranchID,
		arg.ToBranchID,
		arg.MedicineID,
		arg.QuantityRequested,
	)
	return scanBranchRequest(row)
}

const getBranchRequestByID = `-- name: GetBranchRequestByID :one
SELECT ` + branchRequestColumns + `
FROM branch_requests
WHERE id = $1
`

func (q *Queries) GetBranchRequestByID(ctx context.Context, id int64) (BranchRequest, error) {
	row := q.db.QueryRow(ctx, getBranchRequestByID, id)
	return scanBranchRequest(row)
}

const listPendingBranchRequests = `-- name: ListPendingBranchRequests :many
SELECT ` + branchRequestColumns + `
FROM branch_requests
WHERE to_branch_id = $1
  AND status = 'pending'
ORDER BY created_at DESC
`

func (q *Queries) ListPendingBranchRequests(ctx context.Context, toBranchID int64) ([]BranchRequest, error) {
	rows, err := q.db.Query(ctx, listPendingBranchRequests, toBranchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BranchRequest{}
	for rows.Next() {
		i, err := scanBranchRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBranchRequestHistory = `-- name: ListBranchRequestHistory :many
SELECT ` + branchRequestColumns + `
FROM branch_requests
WHERE (to_branch_id = $1 OR from_branch_id = $1)
  AND status <> 'pending'
ORDER BY updated_at DESC NULLS LAST
`

func (q *Queries) ListBranchRequestHistory(ctx context.Context, branchID int64) ([]BranchRequest, error) {
	rows, err := q.db.Query(ctx, listBranchRequestHistory, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BranchRequest{}
	for rows.Next() {
		i, err := scanBranchRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBranchRequestStatus = `-- name: UpdateBranchRequestStatus :one
UPDATE branch_requests
SET status     = $2,
    decided_by = $3,
    updated_at = now()
WHERE id = $1
RETURNING ` + branchRequestColumns

type UpdateBranchRequestStatusParams struct {
	ID        int64               `json:"id"`
	Status    BranchRequestStatus `json:"status"`
	DecidedBy string              `json:"decided_by"`
}

func (q *Queries) UpdateBranchRequestStatus(ctx context.Context, arg UpdateBranchRequestStatusParams) (BranchRequest, error) {
	row := q.db.QueryRow(ctx, updateBranchRequestStatus, arg.ID, arg.Status, arg.DecidedBy)
	return scanBranchRequest(row)
}
