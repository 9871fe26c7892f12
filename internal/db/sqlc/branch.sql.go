package db

import (
	"context"
)

const createBranch = `-- name: CreateBranch :one
INSERT INTO branches (name, address, contact_number)
VALUES ($1, $2, $3)
RETURNING id, name, address, contact_number, created_at
`

type CreateBranchParams struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	ContactNumber *string `json:"contact_number"`
}

func (q *Queries) CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error) {
	row := q.db.QueryRow(ctx, createBranch, arg.Name, arg.Address, arg.ContactNumber)
	var i Branch
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Address,
		&i.ContactNumber,
		&i.CreatedAt,
	)
	return i, err
}

const getBranchByID = `-- name: GetBranchByID :one
SELECT id, name, address, contact_number, created_at
FROM branches
WHERE id = $1
`

func (q *Queries) GetBranchByID(ctx context.Context, id int64) (Branch, error) {
	row := q.db.QueryRow(ctx, getBranchByID, id)
	var i Branch
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Address,
		&i.ContactNumber,
		&i.CreatedAt,
	)
	return i, err
}

const listBranches = `-- name: ListBranches :many
SELECT id, name, address, contact_number, created_at
FROM branches
ORDER BY name
`

func (q *Queries) ListBranches(ctx context.Context) ([]Branch, error) {
	rows, err := q.db.Query(ctx, listBranches)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Branch{}
	for rows.Next() {
		var i Branch
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Address,
			&i.ContactNumber,
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

const updateBranch = `-- name: UpdateBranch :one
UPDATE branches
SET name           = coalesce($2, name),
    address        = coalesce($3, address),
    contact_number = coalesce($4, contact_number)
WHERE id = $1
RETURNING id, name, address, contact_number, created_at
`

type UpdateBranchParams struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
}

func (q *Queries) UpdateBranch(ctx context.Context, arg UpdateBranchParams) (Branch, error) {
	row := q.db.QueryRow(ctx, updateBranch,
		arg.ID,
		arg.Name,
		arg.Address,
		arg.ContactNumber,
	)
	var i Branch
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Address,
		&i.ContactNumber,
		&i.CreatedAt,
	)
	return i, err
}
