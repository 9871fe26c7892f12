package db

import (
	"context"
)

const createPatient = `-- name: CreatePatient :one
INSERT INTO patients (patient_type, id_number, first_name, last_name, email, department, year_level, contact_number)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, patient_type, id_number, first_name, last_name, email, department, year_level, contact_number, created_at, updated_at
`

type CreatePatientParams struct {
	PatientType   PatientType `json:"patient_type"`
	IDNumber      string      `json:"id_number"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Email         *string     `json:"email"`
	Department    string      `json:"department"`
	YearLevel     *int32      `json:"year_level"`
	ContactNumber *string     `json:"contact_number"`
}

func (q *Queries) CreatePatient(ctx context.Context, arg CreatePatientParams) (Patient, error) {
	row := q.db.QueryRow(ctx, createPatient,
		arg.PatientType,
		arg.IDNumber,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Department,
		arg.YearLevel,
		arg.ContactNumber,
	)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.PatientType,
		&i.IDNumber,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Department,
		&i.YearLevel,
		&i.ContactNumber,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPatientByID = `-- name: GetPatientByID :one
SELECT id, patient_type, id_number, first_name, last_name, email, department, year_level, contact_number, created_at, updated_at
FROM patients
WHERE id = $1
`

func (q *Queries) GetPatientByID(ctx context.Context, id int64) (Patient, error) {
	row := q.db.QueryRow(ctx, getPatientByID, id)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.PatientType,
		&i.IDNumber,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Department,
		&i.YearLevel,
		&i.ContactNumber,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPatientByIDNumber = `-- name: GetPatientByIDNumber :one
SELECT id, patient_type, id_number, first_name, last_name, email, department, year_level, contact_number, created_at, updated_at
FROM patients
WHERE id_number = $1
`

func (q *Queries) GetPatientByIDNumber(ctx context.Context, idNumber string) (Patient, error) {
	row := q.db.QueryRow(ctx, getPatientByIDNumber, idNumber)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.PatientType,
		&i.IDNumber,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Department,
		&i.YearLevel,
		&i.ContactNumber,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listPatients = `-- name: ListPatients :many
SELECT id, patient_type, id_number, first_name, last_name, email, department, year_level, contact_number, created_at, updated_at
FROM patients
WHERE ($1::text = '' OR id_number ILIKE '%' || $1 || '%'
    OR first_name ILIKE '%' || $1 || '%'
    OR last_name ILIKE '%' || $1 || '%')
ORDER BY last_name, first_name
LIMIT $2 OFFSET $3
`

type ListPatientsParams struct {
	Search string `json:"search"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) ListPatients(ctx context.Context, arg ListPatientsParams) ([]Patient, error) {
	rows, err := q.db.Query(ctx, listPatients, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Patient{}
	for rows.Next() {
		var i Patient
		if err := rows.Scan(
			&i.ID,
			&i.PatientType,
			&i.IDNumber,
			&i.FirstName,
			&i.LastName,
			&i.Email,
			&i.Department,
			&i.YearLevel,
			&i.ContactNumber,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updatePatient = `-- name: UpdatePatient :one
UPDATE patients
SET first_name     = coalesce($2, first_name),
    last_name      = coalesce($3, last_name),
    email          = coalesce($4, email),
    department     = coalesce($5, department),
    year_level     = coalesce($6, year_level),
    contact_number = coalesce($7, contact_number),
    updated_at     = now()
WHERE id = $1
RETURNING id, patient_type, id_number, first_name, last_name, email, department, year_level, contact_number, created_at, updated_at
`

type UpdatePatientParams struct {
	ID            int64   `json:"id"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Department    *string `json:"department"`
	YearLevel     *int32  `json:"year_level"`
	ContactNumber *string `json:"contact_number"`
}

func (q *Queries) UpdatePatient(ctx context.Context, arg UpdatePatientParams) (Patient, error) {
	row := q.db.QueryRow(ctx, updatePatient,
		arg.ID,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Department,
		arg.YearLevel,
		arg.ContactNumber,
	)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.PatientType,
		&i.IDNumber,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Department,
		&i.YearLevel,
		&i.ContactNumber,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deletePatient = `-- name: DeletePatient :exec
DELETE FROM patients
WHERE id = $1
`

func (q *Queries) DeletePatient(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deletePatient, id)
	return err
}
