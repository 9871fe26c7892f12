package db

import (
	"context"
	"time"
)

const consultationColumns = `id, patient_id, branch_id, nurse_id, doctor_id, chief_complaint, temperature, blood_pressure, pulse_rate, respiratory_rate, diagnosis, remarks, status, created_at, updated_at`

func scanConsultation(row interface{ Scan(dest ...interface{}) error }) (Consultation, error) {
	var i Consultation
	err := row.Scan(
		&i.ID,
		&i.PatientID,
		&i.BranchID,
		&i.NurseID,
		&i.DoctorID,
		&i.ChiefComplaint,
		&i.Temperature,
		&i.BloodPressure,
		&i.PulseRate,
		&i.RespiratoryRate,
		&i.Diagnosis,
		&i.Remarks,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createConsultation = `-- name: CreateConsultation :one
INSERT INTO consultations (patient_id, branch_id, nurse_id, chief_complaint, temperature, blood_pressure, pulse_rate, respiratory_rate, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'open')
RETURNING ` + consultationColumns

type CreateConsultationParams struct {
	PatientID       int64   `json:"patient_id"`
	BranchID        int64   `json:"branch_id"`
	NurseID         string  `json:"nurse_id"`
	ChiefComplaint  string  `json:"chief_complaint"`
	Temperature     *string `json:"temperature"`
	BloodPressure   *string `json:"blood_pressure"`
	PulseRate       *int32  `json:"pulse_rate"`
	RespiratoryRate *int32  `json:"respiratory_rate"`
}

func (q *Queries) CreateConsultation(ctx context.Context, arg CreateConsultationParams) (Consultation, error) {
	row := q.db.QueryRow(ctx, createConsultation,
		arg.PatientID,
		arg.BranchID,
		arg.NurseID,
		arg.ChiefComplaint,
		arg.Temperature,
		arg.BloodPressure,
		arg.PulseRate,
		arg.RespiratoryRate,
	)
	return scanConsultation(row)
}

const getConsultationByID = `-- name: GetConsultationByID :one
SELECT ` + consultationColumns + `
FROM consultations
WHERE id = $1
`

func (q *Queries) GetConsultationByID(ctx context.Context, id int64) (Consultation, error) {
	row := q.db.QueryRow(ctx, getConsultationByID, id)
	return scanConsultation(row)
}

const listConsultations = `-- name: ListConsultations :many
SELECT ` + consultationColumns + `
FROM consultations
WHERE branch_id = $1
  AND ($2::bigint = 0 OR patient_id = $2)
  AND ($3::text = '' OR status = $3::consultation_status)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

type ListConsultationsParams struct {
	BranchID  int64                  `json:"branch_id"`
	PatientID int64                  `json:"patient_id"`
	Status    NullConsultationStatus `json:"status"`
	Limit     int32                  `json:"limit"`
	Offset    int32                  `json:"offset"`
}

func (q *Queries) ListConsultations(ctx context.Context, arg ListConsultationsParams) ([]Consultation, error) {
	status := ""
	if arg.Status.Valid {
		status = string(arg.Status.ConsultationStatus)
	}
	rows, err := q.db.Query(ctx, listConsultations,
		arg.BranchID,
		arg.PatientID,
		status,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Consultation{}
	for rows.Next() {
		i, err := scanConsultation(rows)
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

const updateConsultationVitals = `-- name: UpdateConsultationVitals :one
UPDATE consultations
SET temperature      = coalesce($2, temperature),
    blood_pressure   = coalesce($3, blood_pressure),
    pulse_rate       = coalesce($4, pulse_rate),
    respiratory_rate = coalesce($5, respiratory_rate),
    updated_at       = now()
WHERE id = $1
RETURNING ` + consultationColumns

type UpdateConsultationVitalsParams struct {
	ID              int64   `json:"id"`
	Temperature     *string `json:"temperature"`
	BloodPressure   *string `json:"blood_pressure"`
	PulseRate       *int32  `json:"pulse_rate"`
	RespiratoryRate *int32  `json:"respiratory_rate"`
}

func (q *Queries) UpdateConsultationVitals(ctx context.Context, arg UpdateConsultationVitalsParams) (Consultation, error) {
	row := q.db.QueryRow(ctx, updateConsultationVitals,
		arg.ID,
		arg.Temperature,
		arg.BloodPressure,
		arg.PulseRate,
		arg.RespiratoryRate,
	)
	return scanConsultation(row)
}

const referConsultation = `-- name: ReferConsultation :one
UPDATE consultations
SET doctor_id  = $2,
    status     = 'referred',
    updated_at = now()
WHERE id = $1
RETURNING ` + consultationColumns

type ReferConsultationParams struct {
	ID       int64  `json:"id"`
	DoctorID string `json:"doctor_id"`
}

func (q *Queries) ReferConsultation(ctx context.Context, arg ReferConsultationParams) (Consultation, error) {
	row := q.db.QueryRow(ctx, referConsultation, arg.ID, arg.DoctorID)
	return scanConsultation(row)
}

const diagnoseConsultation = `-- name: DiagnoseConsultation :one
UPDATE consultations
SET diagnosis  = $2,
    remarks    = coalesce($3, remarks),
    updated_at = now()
WHERE id = $1
RETURNING ` + consultationColumns

type DiagnoseConsultationParams struct {
	ID        int64   `json:"id"`
	Diagnosis string  `json:"diagnosis"`
	Remarks   *string `json:"remarks"`
}

func (q *Queries) DiagnoseConsultation(ctx context.Context, arg DiagnoseConsultationParams) (Consultation, error) {
	row := q.db.QueryRow(ctx, diagnoseConsultation, arg.ID, arg.Diagnosis, arg.Remarks)
	return scanConsultation(row)
}

const completeConsultation = `-- name: CompleteConsultation :one
UPDATE consultations
SET status     = 'completed',
    updated_at = now()
WHERE id = $1
RETURNING ` + consultationColumns

func (q *Queries) CompleteConsultation(ctx context.Context, id int64) (Consultation, error) {
	row := q.db.QueryRow(ctx, completeConsultation, id)
	return scanConsultation(row)
}

const countConsultations = `-- name: CountConsultations :one
SELECT count(*)
FROM consultations
WHERE branch_id = $1
  AND created_at >= $2
  AND created_at < $3
`

type CountConsultationsParams struct {
	BranchID int64     `json:"branch_id"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

func (q *Queries) CountConsultations(ctx context.Context, arg CountConsultationsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countConsultations, arg.BranchID, arg.From, arg.To)
	var count int64
	err := row.Scan(&count)
	return count, err
}
