package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/validator"
)

type createPatientRequest struct {
	PatientType   string  `json:"patient_type"`
	IDNumber      string  `json:"id_number"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         *string `json:"email"`
	Department    string  `json:"department"`
	YearLevel     *int32  `json:"year_level"`
	ContactNumber *string `json:"contact_number"`
}

func validateCreatePatientRequest(req *createPatientRequest) (violations []*FieldViolation) {
	if err := db.IsValidPatientType(req.PatientType); err != nil {
		violations = append(violations, fieldViolation("patient_type", err))
	}

	if err := validator.ValidateIDNumber(req.IDNumber); err != nil {
		violations = append(violations, fieldViolation("id_number", err))
	}

	if err := validator.ValidateString(req.FirstName, 1, 100); err != nil {
		violations = append(violations, fieldViolation("first_name", err))
	}

	if err := validator.ValidateString(req.LastName, 1, 100); err != nil {
		violations = append(violations, fieldViolation("last_name", err))
	}

	if req.Email != nil {
		if err := validator.ValidateEmail(*req.Email); err != nil {
			violations = append(violations, fieldViolation("email", err))
		}
	}

	if req.PatientType == string(db.PatientTypeStudent) && req.YearLevel == nil {
		violations = append(violations, fieldViolation("year_level", errors.New("is required for student patients")))
	}

	return violations
}

//	@Summary		Create a new patient
//	@Description	Registers a student or employee patient record
//	@Tags			patients
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createPatientRequest	true	"Patient creation request"
//	@Success		200		{object}	db.Patient				"Patient created successfully"
//	@Failure		409		"Conflict - Patient with this ID number already exists"
//	@Failure		422		"Unprocessable Entity - Validation failed"
//	@Router			/patients [post]
func (server *Server) createPatient(ctx *gin.Context) {
	req := new(createPatientRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violations := validateCreatePatientRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	arg := db.CreatePatientParams{
		PatientType:   db.PatientType(req.PatientType),
		IDNumber:      req.IDNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Department:    req.Department,
		YearLevel:     req.YearLevel,
		ContactNumber: req.ContactNumber,
	}

	patient, err := server.dbStore.CreatePatient(ctx, arg)
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniquePatientIDNumberConstraint {
			err = fmt.Errorf("patient with ID number %s already exists", req.IDNumber)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create patient")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

//	@Summary		List patients
//	@Description	Retrieves patients, optionally filtered by ID number or name
//	@Tags			patients
//	@Produce		json
//	@Security		accessToken
//	@Param			search		query	string		false	"Filter by ID number or name"
//	@Param			page		query	integer		false	"Page number"	default(1)
//	@Param			page_size	query	integer		false	"Page size"		default(20)
//	@Success		200			{array}	db.Patient	"Successfully retrieved patients"
//	@Failure		500			"Internal Server Error - Failed to retrieve patients"
//	@Router			/patients [get]
func (server *Server) listPatients(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)

	patients, err := server.dbStore.ListPatients(ctx, db.ListPatientsParams{
		Search: ctx.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list patients")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, patients)
}

//	@Summary		Get patient by ID
//	@Description	Retrieves a single patient record
//	@Tags			patients
//	@Produce		json
//	@Security		accessToken
//	@Param			patientID	path		integer		true	"Patient ID"
//	@Success		200			{object}	db.Patient	"Successfully retrieved patient"
//	@Failure		404			"Not Found - Patient does not exist"
//	@Router			/patients/{patientID} [get]
func (server *Server) getPatient(ctx *gin.Context) {
	patientID, err := parseIDParam(ctx, "patientID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	patient, err := server.dbStore.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("patient %d not found", patientID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get patient")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

type updatePatientRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Department    *string `json:"department"`
	YearLevel     *int32  `json:"year_level"`
	ContactNumber *string `json:"contact_number"`
}

//	@Summary		Update patient
//	@Description	Updates the mutable fields of an existing patient record
//	@Tags			patients
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			patientID	path		integer					true	"Patient ID"
//	@Param			request		body		updatePatientRequest	true	"Patient fields to update"
//	@Success		200			{object}	db.Patient				"Patient updated successfully"
//	@Failure		404			"Not Found - Patient does not exist"
//	@Router			/patients/{patientID} [put]
func (server *Server) updatePatient(ctx *gin.Context) {
	patientID, err := parseIDParam(ctx, "patientID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(updatePatientRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Email != nil {
		if err = validator.ValidateEmail(*req.Email); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("email", err)}))
			return
		}
	}

	patient, err := server.dbStore.UpdatePatient(ctx, db.UpdatePatientParams{
		ID:            patientID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Department:    req.Department,
		YearLevel:     req.YearLevel,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("patient %d not found", patientID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update patient")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

func (server *Server) deletePatient(ctx *gin.Context) {
	patientID, err := parseIDParam(ctx, "patientID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = server.dbStore.DeletePatient(ctx, patientID); err != nil {
		log.Err(err).Msg("failed to delete patient")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("patient %d deleted", patientID)})
}
