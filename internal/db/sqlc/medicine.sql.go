package db

import (
	"context"
	"time"
)

const createMedicine = `-- name: CreateMedicine :one
INSERT INTO medicines (name, slug, category, unit, low_stock_threshold)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, slug, category, unit, low_stock_threshold, created_at
`

type CreateMedicineParams struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Category          string `json:"category"`
	Unit              string `json:"unit"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
}

func (q *Queries) CreateMedicine(ctx context.Context, arg CreateMedicineParams) (Medicine, error) {
	row := q.db.QueryRow(ctx, createMedicine,
		arg.Name,
		arg.Slug,
		arg.Category,
		arg.Unit,
		arg.LowStockThreshold,
	)
	var i Medicine
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Category,
		&i.Unit,
		&i.LowStockThreshold,
		&i.CreatedAt,
	)
	return i, err
}

const getMedicineByID = `-- name: GetMedicineByID :one
SELECT id, name, slug, category, unit, low_stock_threshold, created_at
FROM medicines
WHERE id = $1
`

func (q *Queries) GetMedicineByID(ctx context.Context, id int64) (Medicine, error) {
	row := q.db.QueryRow(ctx, getMedicineByID, id)
	var i Medicine
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Category,
		&i.Unit,
		&i.LowStockThreshold,
		&i.CreatedAt,
	)
	return i, err
}

const getMedicineBySlug = `-- name: GetMedicineBySlug :one
SELECT id, name, slug, category, unit, low_stock_threshold, created_at
FROM medicines
WHERE slug = $1
`

func (q *Queries) GetMedicineBySlug(ctx context.Context, slug string) (Medicine, error) {
	row := q.db.QueryRow(ctx, getMedicineBySlug, slug)
	var i Medicine
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Category,
		&i.Unit,
		&i.LowStockThreshold,
		&i.CreatedAt,
	)
	return i, err
}

const listMedicines = `-- name: ListMedicines :many
SELECT id, name, slug, category, unit, low_stock_threshold, created_at
FROM medicines
ORDER BY name
`

func (q *Queries) ListMedicines(ctx context.Context) ([]Medicine, error) {
	rows, err := q.db.Query(ctx, listMedicines)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Medicine{}
	for rows.Next() {
		var i Medicine
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Slug,
			&i.Category,
			&i.Unit,
			&i.LowStockThreshold,
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

const updateMedicine = `-- name: UpdateMedicine :one
UPDATE medicines
SET name                = coalesce($2, name),
    category            = coalesce($3, category),
    unit                = coalesce($4, unit),
    low_stock_threshold = coalesce($5, low_stock_threshold)
WHERE id = $1
RETURNING id, name, slug, category, unit, low_stock_threshold, created_at
`

type UpdateMedicineParams struct {
	ID                int64   `json:"id"`
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Unit              *string `json:"unit"`
	LowStockThreshold *int32  `json:"low_stock_threshold"`
}

func (q *Queries) UpdateMedicine(ctx context.Context, arg UpdateMedicineParams) (Medicine, error) {
	row := q.db.QueryRow(ctx, updateMedicine,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.Unit,
		arg.LowStockThreshold,
	)
	var i Medicine
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.Category,
		&i.Unit,
		&i.LowStockThreshold,
		&i.CreatedAt,
	)
	return i, err
}

const getBranchInventory = `-- name: GetBranchInventory :one
SELECT branch_id, medicine_id, quantity_on_hand, updated_at
FROM branch_inventories
WHERE branch_id = $1
  AND medicine_id = $2
`

type GetBranchInventoryParams struct {
	BranchID   int64 `json:"branch_id"`
	MedicineID int64 `json:"medicine_id"`
}

func (q *Queries) GetBranchInventory(ctx context.Context, arg GetBranchInventoryParams) (BranchInventory, error) {
	row := q.db.QueryRow(ctx, getBranchInventory, arg.BranchID, arg.MedicineID)
	var i BranchInventory
	err := row.Scan(
		&i.BranchID,
		&i.MedicineID,
		&i.QuantityOnHand,
		&i.UpdatedAt,
	)
	return i, err
}

const listBranchInventory = `-- name: ListBranchInventory :many
SELECT bi.branch_id, bi.medicine_id, bi.quantity_on_hand, bi.updated_at,
       m.name, m.unit, m.low_stock_threshold
FROM branch_inventories bi
         JOIN medicines m ON m.id = bi.medicine_id
WHERE bi.branch_id = $1
ORDER BY m.name
`

type ListBranchInventoryRow struct {
	BranchID          int64     `json:"branch_id"`
	MedicineID        int64     `json:"medicine_id"`
	QuantityOnHand    int32     `json:"quantity_on_hand"`
	UpdatedAt         time.Time `json:"updated_at"`
	MedicineName      string    `json:"medicine_name"`
	Unit              string    `json:"unit"`
	LowStockThreshold int32     `json:"low_stock_threshold"`
}

func (q *Queries) ListBranchInventory(ctx context.Context, branchID int64) ([]ListBranchInventoryRow, error) {
	rows, err := q.db.Query(ctx, listBranchInventory, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBranchInventoryRow{}
	for rows.Next() {
		var i ListBranchInventoryRow
		if err := rows.Scan(
			&i.BranchID,
			&i.MedicineID,
			&i.QuantityOnHand,
			&i.UpdatedAt,
			&i.MedicineName,
			&i.Unit,
			&i.LowStockThreshold,
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

const listLowStockInventory = `-- name: ListLowStockInventory :many
SELECT bi.branch_id, bi.medicine_id, bi.quantity_on_hand, bi.updated_at,
       m.name, m.unit, m.low_stock_threshold
FROM branch_inventories bi
         JOIN medicines m ON m.id = bi.medicine_id
WHERE bi.branch_id = $1
  AND bi.quantity_on_hand <= m.low_stock_threshold
ORDER BY bi.quantity_on_hand
`

func (q *Queries) ListLowStockInventory(ctx context.Context, branchID int64) ([]ListBranchInventoryRow, error) {
	rows, err := q.db.Query(ctx, listLowStockInventory, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBranchInventoryRow{}
	for rows.Next() {
		var i ListBranchInventoryRow
		if err := rows.Scan(
			&i.BranchID,
			&i.MedicineID,
			&i.QuantityOnHand,
			&i.UpdatedAt,
			&i.MedicineName,
			&i.Unit,
			&i.LowStockThreshold,
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

const addInventoryQuantity = `-- name: AddInventoryQuantity :one
INSERT INTO branch_inventories (branch_id, medicine_id, quantity_on_hand, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (branch_id, medicine_id)
    DO UPDATE SET quantity_on_hand = branch_inventories.quantity_on_hand + $3,
                  updated_at       = now()
RETURNING branch_id, medicine_id, quantity_on_hand, updated_at
`

type AddInventoryQuantityParams struct {
	BranchID   int64 `json:"branch_id"`
	MedicineID int64 `json:"medicine_id"`
	Quantity   int32 `json:"quantity"`
}

func (q *Queries) AddInventoryQuantity(ctx context.Context, arg AddInventoryQuantityParams) (BranchInventory, error) {
	row := q.db.QueryRow(ctx, addInventoryQuantity, arg.BranchID, arg.MedicineID, arg.Quantity)
	var i BranchInventory
	err := row.Scan(
		&i.BranchID,
		&i.MedicineID,
		&i.QuantityOnHand,
		&i.UpdatedAt,
	)
	return i, err
}
