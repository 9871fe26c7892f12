package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

const (
	UniqueEmailConstraint           = "users_email_key"
	UniquePatientIDNumberConstraint = "patients_id_number_key"
	UniqueMedicineSlugConstraint    = "medicines_slug_key"
)

var ErrRecordNotFound = pgx.ErrNoRows

// ErrInsufficientStock is returned by stock-out and approve transactions when
// the branch does not hold enough quantity of the medicine.
var ErrInsufficientStock = errors.New("insufficient stock on hand")

// ErrorDescription returns the error code and constraint name from a Postgres error.
func ErrorDescription(err error) (errCode string, constraintName string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return
}
