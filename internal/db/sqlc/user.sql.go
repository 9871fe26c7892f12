package db

import (
	"context"
)

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, full_name, email, hashed_password, role, branch_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, full_name, email, hashed_password, role, branch_id, created_at
`

type CreateUserParams struct {
	ID             string   `json:"id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	HashedPassword *string  `json:"hashed_password"`
	Role           UserRole `json:"role"`
	BranchID       *int64   `json:"branch_id"`
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.ID,
		arg.FullName,
		arg.Email,
		arg.HashedPassword,
		arg.Role,
		arg.BranchID,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Email,
		&i.HashedPassword,
		&i.Role,
		&i.BranchID,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT id, full_name, email, hashed_password, role, branch_id, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Email,
		&i.HashedPassword,
		&i.Role,
		&i.BranchID,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT id, full_name, email, hashed_password, role, branch_id, created_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Email,
		&i.HashedPassword,
		&i.Role,
		&i.BranchID,
		&i.CreatedAt,
	)
	return i, err
}

const listUsersByBranch = `-- name: ListUsersByBranch :many
SELECT id, full_name, email, hashed_password, role, branch_id, created_at
FROM users
WHERE branch_id = $1
ORDER BY full_name
`

func (q *Queries) ListUsersByBranch(ctx context.Context, branchID *int64) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsersByBranch, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []User{}
	for rows.Next() {
		var i User
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Email,
			&i.HashedPassword,
			&i.Role,
			&i.BranchID,
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
