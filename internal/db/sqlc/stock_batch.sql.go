package db

import (
	"context"
	"time"
)

const createStockBatch = `-- name: CreateStockBatch :one
INSERT INTO stock_batches (batch_code, branch_id, medicine_id, direction, quantity, reason, supplier, expiry_date, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, batch_code, branch_id, medicine_id, direction, quantity, reason, supplier, expiry_date, created_by, created_at
`

type CreateStockBatchParams struct {
	BatchCode  string         `json:"batch_code"`
	BranchID   int64          `json:"branch_id"`
	MedicineID int64          `json:"medicine_id"`
	Direction  StockDirection `json:"direction"`
	Quantity   int32          `json:"quantity"`
	Reason     *string        `json:"reason"`
	Supplier   *string        `json:"supplier"`
	ExpiryDate *time.Time     `json:"expiry_date"`
	CreatedBy  string         `json:"created_by"`
}

func (q *Queries) CreateStockBatch(ctx context.Context, arg CreateStockBatchParams) (StockBatch, error) {
	row := q.db.QueryRow(ctx, createStockBatch,
		arg.BatchCode,
		arg.BranchID,
		arg.MedicineID,
		arg.Direction,
		arg.Quantity,
		arg.Reason,
		arg.Supplier,
		arg.ExpiryDate,
		arg.CreatedBy,
	)
	var i StockBatch
	err := row.Scan(
		&i.ID,
		&i.BatchCode,
		&i.BranchID,
		&i.MedicineID,
		&i.Direction,
		&i.Quantity,
		&i.Reason,
		&i.Supplier,
		&i.ExpiryDate,
		&i.CreatedBy,
		&i.CreatedAt,
	)
	return i, err
}

const listStockBatches = `-- name: ListStockBatches :many
SELECT id, batch_code, branch_id, medicine_id, direction, quantity, reason, supplier, expiry_date, created_by, created_at
FROM stock_batches
WHERE branch_id = $1
  AND ($2::bigint = 0 OR medicine_id = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type ListStockBatchesParams struct {
	BranchID   int64 `json:"branch_id"`
	MedicineID int64 `json:"medicine_id"`
	Limit      int32 `json:"limit"`
	Offset     int32 `json:"offset"`
}

func (q *Queries) ListStockBatches(ctx context.Context, arg ListStockBatchesParams) ([]StockBatch, error) {
	rows, err := q.db.Query(ctx, listStockBatches,
		arg.BranchID,
		arg.MedicineID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []StockBatch{}
	for rows.Next() {
		var i StockBatch
		if err := rows.Scan(
			&i.ID,
			&i.BatchCode,
			&i.BranchID,
			&i.MedicineID,
			&i.Direction,
			&i.Quantity,
			&i.Reason,
			&i.Supplier,
			&i.ExpiryDate,
			&i.CreatedBy,
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

const summarizeStockMovement = `-- name: SummarizeStockMovement :many
SELECT medicine_id,
       m.name,
       direction,
       sum(quantity)::bigint AS total_quantity
FROM stock_batches sb
         JOIN medicines m ON m.id = sb.medicine_id
WHERE sb.branch_id = $1
  AND sb.created_at >= $2
  AND sb.created_at < $3
GROUP BY medicine_id, m.name, direction
ORDER BY m.name, direction
`

type SummarizeStockMovementParams struct {
	BranchID int64     `json:"branch_id"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

type SummarizeStockMovementRow struct {
	MedicineID    int64          `json:"medicine_id"`
	MedicineName  string         `json:"medicine_name"`
	Direction     StockDirection `json:"direction"`
	TotalQuantity int64          `json:"total_quantity"`
}

func (q *Queries) SummarizeStockMovement(ctx context.Context, arg SummarizeStockMovementParams) ([]SummarizeStockMovementRow, error) {
	rows, err := q.db.Query(ctx, summarizeStockMovement, arg.BranchID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SummarizeStockMovementRow{}
	for rows.Next() {
		var i SummarizeStockMovementRow
		if err := rows.Scan(
			&i.MedicineID,
			&i.MedicineName,
			&i.Direction,
			&i.TotalQuantity,
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
