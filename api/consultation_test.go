package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
)

func TestCanDispense(t *testing.T) {
	testCases := []struct {
		name    string
		status  db.ConsultationStatus
		wantErr bool
	}{
		{
			name:   "open consultation accepts dispensing",
			status: db.ConsultationStatusOpen,
		},
		{
			name:   "referred consultation accepts dispensing",
			status: db.ConsultationStatusReferred,
		},
		{
			name:    "completed consultation is closed",
			status:  db.ConsultationStatusCompleted,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := canDispense(db.Consultation{ID: 7, Status: tc.status})
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already completed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDispenseReasonNamesConsultation(t *testing.T) {
	assert.Equal(t, "dispensed for consultation 42", dispenseReason(42))
}
