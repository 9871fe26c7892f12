package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/validator"
)

type createConsultationRequest struct {
	PatientID       int64   `json:"patient_id" binding:"required"`
	BranchID        int64   `json:"branch_id" binding:"required"`
	ChiefComplaint  string  `json:"chief_complaint" binding:"required"`
	Temperature     *string `json:"temperature"`
	BloodPressure   *string `json:"blood_pressure"`
	PulseRate       *int32  `json:"pulse_rate"`
	RespiratoryRate *int32  `json:"respiratory_rate"`
}

//	@Summary		Create a new consultation
//	@Description	Records a clinic visit with the chief complaint and initial vitals
//	@Tags			consultations
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createConsultationRequest	true	"Consultation creation request"
//	@Success		200		{object}	db.Consultation				"Consultation created successfully"
//	@Failure		404		"Not Found - Patient does not exist"
//	@Router			/consultations [post]
func (server *Server) createConsultation(ctx *gin.Context) {
	req := new(createConsultationRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := authPayloadFromContext(ctx)

	// The patient must exist before a visit can be recorded.
	if _, err := server.dbStore.GetPatientByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("patient %d not found", req.PatientID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get patient")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	consultation, err := server.dbStore.CreateConsultation(ctx, db.CreateConsultationParams{
		PatientID:       req.PatientID,
		BranchID:        req.BranchID,
		NurseID:         authPayload.Subject,
		ChiefComplaint:  req.ChiefComplaint,
		Temperature:     req.Temperature,
		BloodPressure:   req.BloodPressure,
		PulseRate:       req.PulseRate,
		RespiratoryRate: req.RespiratoryRate,
	})
	if err != nil {
		log.Err(err).Msg("failed to create consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}

//	@Summary		List consultations
//	@Description	Retrieves consultations, optionally filtered by branch, patient or status
//	@Tags			consultations
//	@Produce		json
//	@Security		accessToken
//	@Param			branch_id	query	integer			false	"Filter by branch ID"
//	@Param			patient_id	query	integer			false	"Filter by patient ID"
//	@Param			status		query	string			false	"Filter by status"	Enums(open, referred, completed)
//	@Success		200			{array}	db.Consultation	"Successfully retrieved consultations"
//	@Failure		400			"Bad Request - Invalid query parameters"
//	@Router			/consultations [get]
func (server *Server) listConsultations(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)

	arg := db.ListConsultationsParams{
		Limit:  limit,
		Offset: offset,
	}

	if raw := ctx.Query("branch_id"); raw != "" {
		branchID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || branchID <= 0 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid branch_id")))
			return
		}
		arg.BranchID = branchID
	}

	if raw := ctx.Query("patient_id"); raw != "" {
		patientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || patientID <= 0 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid patient_id")))
			return
		}
		arg.PatientID = patientID
	}

	if status := ctx.Query("status"); status != "" {
		if err := db.IsValidConsultationStatus(status); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		arg.Status = db.NullConsultationStatus{
			ConsultationStatus: db.ConsultationStatus(status),
			Valid:              true,
		}
	}

	consultations, err := server.dbStore.ListConsultations(ctx, arg)
	if err != nil {
		log.Err(err).Msg("failed to list consultations")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultations)
}

//	@Summary		Get consultation by ID
//	@Tags			consultations
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer			true	"Consultation ID"
//	@Success		200				{object}	db.Consultation	"Successfully retrieved consultation"
//	@Failure		404				"Not Found - Consultation does not exist"
//	@Router			/consultations/{consultationID} [get]
func (server *Server) getConsultation(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	consultation, err := server.dbStore.GetConsultationByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}

type updateConsultationVitalsRequest struct {
	Temperature     *string `json:"temperature"`
	BloodPressure   *string `json:"blood_pressure"`
	PulseRate       *int32  `json:"pulse_rate"`
	RespiratoryRate *int32  `json:"respiratory_rate"`
}

//	@Summary		Update consultation vitals
//	@Description	Updates the recorded vital signs of an open consultation
//	@Tags			consultations
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer							true	"Consultation ID"
//	@Param			request			body		updateConsultationVitalsRequest	true	"Vital signs to update"
//	@Success		200				{object}	db.Consultation					"Vitals updated successfully"
//	@Failure		404				"Not Found - Consultation does not exist"
//	@Router			/consultations/{consultationID}/vitals [patch]
func (server *Server) updateConsultationVitals(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(updateConsultationVitalsRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	consultation, err := server.dbStore.UpdateConsultationVitals(ctx, db.UpdateConsultationVitalsParams{
		ID:              consultationID,
		Temperature:     req.Temperature,
		BloodPressure:   req.BloodPressure,
		PulseRate:       req.PulseRate,
		RespiratoryRate: req.RespiratoryRate,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update consultation vitals")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}

type referConsultationRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
}

// referConsultation hands an open consultation over to a doctor.
//
//	@Summary		Refer consultation to a doctor
//	@Tags			consultations
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer						true	"Consultation ID"
//	@Param			request			body		referConsultationRequest	true	"Doctor to refer to"
//	@Success		200				{object}	db.Consultation				"Consultation referred successfully"
//	@Failure		404				"Not Found - Consultation or doctor does not exist"
//	@Failure		422				"Unprocessable Entity - Referred user is not a doctor"
//	@Router			/consultations/{consultationID}/refer [patch]
func (server *Server) referConsultation(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(referConsultationRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	doctor, err := server.dbStore.GetUserByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("doctor %s not found", req.DoctorID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get doctor")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	if doctor.Role != db.UserRoleDoctor {
		err = fmt.Errorf("user %s is not a doctor", req.DoctorID)
		ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		return
	}

	consultation, err := server.dbStore.ReferConsultation(ctx, db.ReferConsultationParams{
		ID:       consultationID,
		DoctorID: req.DoctorID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found or not open", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to refer consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}

type diagnoseConsultationRequest struct {
	Diagnosis string  `json:"diagnosis" binding:"required"`
	Remarks   *string `json:"remarks"`
}

//	@Summary		Diagnose consultation
//	@Description	Records the doctor's diagnosis and optional remarks
//	@Tags			consultations
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer						true	"Consultation ID"
//	@Param			request			body		diagnoseConsultationRequest	true	"Diagnosis details"
//	@Success		200				{object}	db.Consultation				"Diagnosis recorded successfully"
//	@Failure		404				"Not Found - Consultation does not exist"
//	@Router			/consultations/{consultationID}/diagnose [patch]
func (server *Server) diagnoseConsultation(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(diagnoseConsultationRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	consultation, err := server.dbStore.DiagnoseConsultation(ctx, db.DiagnoseConsultationParams{
		ID:        consultationID,
		Diagnosis: req.Diagnosis,
		Remarks:   req.Remarks,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to diagnose consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}

type dispenseMedicineRequest struct {
	MedicineID int64 `json:"medicine_id" binding:"required"`
	Quantity   int32 `json:"quantity" binding:"required"`
}

type dispenseMedicineResponse struct {
	Consultation db.Consultation    `json:"consultation"`
	Batch        db.StockBatch      `json:"batch"`
	Inventory    db.BranchInventory `json:"inventory"`
}

// canDispense reports whether a consultation can still receive dispensed
// medicine. Completed visits are closed for changes.
func canDispense(consultation db.Consultation) error {
	if consultation.Status == db.ConsultationStatusCompleted {
		return fmt.Errorf("consultation %d is already completed", consultation.ID)
	}
	return nil
}

// dispenseReason links a stock-out batch back to the visit it served.
func dispenseReason(consultationID int64) string {
	return fmt.Sprintf("dispensed for consultation %d", consultationID)
}

//	@Summary		Dispense medicine for a consultation
//	@Description	Records dispensed medicine against a visit and decrements the branch stock
//	@Tags			consultations
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer						true	"Consultation ID"
//	@Param			request			body		dispenseMedicineRequest		true	"Medicine and quantity to dispense"
//	@Success		200				{object}	dispenseMedicineResponse	"Medicine dispensed successfully"
//	@Failure		404				"Not Found - Consultation or branch stock does not exist"
//	@Failure		409				"Conflict - Consultation completed or insufficient stock"
//	@Router			/consultations/{consultationID}/dispense [patch]
func (server *Server) dispenseMedicine(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(dispenseMedicineRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = validator.ValidateQuantity(req.Quantity); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("quantity", err)}))
		return
	}

	consultation, err := server.dbStore.GetConsultationByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if err = canDispense(consultation); err != nil {
		ctx.JSON(http.StatusConflict, errorResponse(err))
		return
	}

	authPayload := authPayloadFromContext(ctx)

	result, err := server.dbStore.StockOutTx(ctx, db.StockOutTxParams{
		BranchID:   consultation.BranchID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
		Reason:     dispenseReason(consultationID),
		CreatedBy:  authPayload.Subject,
	})
	if err != nil {
		if errors.Is(err, db.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("branch %d holds no stock of medicine %d", consultation.BranchID, req.MedicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to dispense medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// Dispensing can push the medicine below its threshold.
	server.maybeAlertLowStock(ctx, consultation.BranchID, req.MedicineID, result.Inventory.QuantityOnHand)

	ctx.JSON(http.StatusOK, dispenseMedicineResponse{
		Consultation: consultation,
		Batch:        result.Batch,
		Inventory:    result.Inventory,
	})
}

//	@Summary		Complete consultation
//	@Tags			consultations
//	@Produce		json
//	@Security		accessToken
//	@Param			consultationID	path		integer			true	"Consultation ID"
//	@Success		200				{object}	db.Consultation	"Consultation completed successfully"
//	@Failure		404				"Not Found - Consultation does not exist"
//	@Router			/consultations/{consultationID}/complete [patch]
func (server *Server) completeConsultation(ctx *gin.Context) {
	consultationID, err := parseIDParam(ctx, "consultationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	consultation, err := server.dbStore.CompleteConsultation(ctx, consultationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("consultation %d not found", consultationID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to complete consultation")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultation)
}
