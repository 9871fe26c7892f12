package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer    = errors.New("internal server error")
	ErrBranchIDMismatch  = errors.New("branch ID in URL does not match authenticated user's branch")
	ErrPermissionDenied  = errors.New("requires admin role")
	ErrRequestNotPending = errors.New("branch request has already been decided")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}
