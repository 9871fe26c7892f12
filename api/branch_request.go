package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/event"
	"github.com/uicmedicare/medicare-BE/internal/validator"
	"github.com/uicmedicare/medicare-BE/internal/worker"
)

type createBranchRequestRequest struct {
	FromBranchID int64 `json:"from_branch_id"`
	MedicineID   int64 `json:"medicine_id" binding:"required"`
	Quantity     int32 `json:"quantity" binding:"required"`
}

// createBranchRequest records a pending stock request: the branch in the URL
// is asked to transfer medicine to the requesting branch.
//
//	@Summary		Create a branch stock request
//	@Description	Asks the target branch to transfer medicine to the requesting branch
//	@Tags			branch requests
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer						true	"Branch asked to fulfill the request"
//	@Param			request		body		createBranchRequestRequest	true	"Requested medicine and quantity"
//	@Success		200			{object}	branchRequestResponse		"Request created successfully"
//	@Failure		404			"Not Found - Medicine does not exist"
//	@Failure		422			"Unprocessable Entity - Requesting from own branch"
//	@Router			/branches/{branchID}/requests [post]
func (server *Server) createBranchRequest(ctx *gin.Context) {
	toBranchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(createBranchRequestRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = validator.ValidateQuantity(req.Quantity); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("quantity", err)}))
		return
	}

	authPayload := authPayloadFromContext(ctx)
	fromBranchID := req.FromBranchID
	if fromBranchID == 0 {
		user, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
		if err != nil || user.BranchID == nil {
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(errors.New("from_branch_id is required for users without a branch")))
			return
		}
		fromBranchID = *user.BranchID
	}

	if fromBranchID == toBranchID {
		ctx.JSON(http.StatusUnprocessableEntity, errorResponse(errors.New("cannot request stock from your own branch")))
		return
	}

	medicine, err := server.dbStore.GetMedicineByID(ctx, req.MedicineID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("medicine %d not found", req.MedicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	request, err := server.dbStore.CreateBranchRequest(ctx, db.CreateBranchRequestParams{
		FromBranchID:      fromBranchID,
		ToBranchID:        toBranchID,
		MedicineID:        req.MedicineID,
		QuantityRequested: req.Quantity,
	})
	if err != nil {
		log.Err(err).Msg("failed to create branch request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// Notify the fulfilling branch so its feed picks up the request.
	server.notifyRequestEvent(ctx, toBranchID, request, medicine.Name, "request")

	ctx.JSON(http.StatusOK, server.toBranchRequestResponse(request, medicine.Name))
}

// branchRequestResponse is the wire shape of a branch stock request, joined
// with the medicine name for display.
type branchRequestResponse struct {
	ID                int64      `json:"branch_request_id"`
	FromBranchID      int64      `json:"from_branch_id"`
	ToBranchID        int64      `json:"to_branch_id"`
	MedicineID        int64      `json:"medicine_id"`
	MedicineName      string     `json:"medicine_name"`
	QuantityRequested int32      `json:"quantity_requested"`
	Status            string     `json:"status"`
	DecidedBy         *string    `json:"decided_by"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

func (server *Server) toBranchRequestResponse(request db.BranchRequest, medicineName string) branchRequestResponse {
	return branchRequestResponse{
		ID:                request.ID,
		FromBranchID:      request.FromBranchID,
		ToBranchID:        request.ToBranchID,
		MedicineID:        request.MedicineID,
		MedicineName:      medicineName,
		QuantityRequested: request.QuantityRequested,
		Status:            string(request.Status),
		DecidedBy:         request.DecidedBy,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}

func (server *Server) medicineNames(ctx *gin.Context) (map[int64]string, error) {
	medicines, err := server.dbStore.ListMedicines(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(medicines))
	for _, medicine := range medicines {
		names[medicine.ID] = medicine.Name
	}
	return names, nil
}

//	@Summary		List pending branch requests
//	@Description	Retrieves the stock requests a branch has been asked to fulfill
//	@Tags			branch requests
//	@Produce		json
//	@Param			branchID	path	integer					true	"Branch ID"
//	@Success		200			{array}	branchRequestResponse	"Successfully retrieved pending requests"
//	@Router			/branches/{branchID}/requests/pending [get]
func (server *Server) listPendingBranchRequests(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	requests, err := server.dbStore.ListPendingBranchRequests(ctx, branchID)
	if err != nil {
		log.Err(err).Msg("failed to list pending branch requests")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	names, err := server.medicineNames(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list medicines")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := make([]branchRequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, server.toBranchRequestResponse(request, names[request.MedicineID]))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (server *Server) listBranchRequestHistory(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	requests, err := server.dbStore.ListBranchRequestHistory(ctx, branchID)
	if err != nil {
		log.Err(err).Msg("failed to list branch request history")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	names, err := server.medicineNames(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list medicines")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := make([]branchRequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, server.toBranchRequestResponse(request, names[request.MedicineID]))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (server *Server) getBranchRequest(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.dbStore.GetBranchRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("branch request %d not found", requestID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get branch request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	medicine, err := server.dbStore.GetMedicineByID(ctx, request.MedicineID)
	if err != nil {
		log.Err(err).Msg("failed to get medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, server.toBranchRequestResponse(request, medicine.Name))
}

type resolveBranchRequestRequest struct {
	ActedBy string `json:"acted_by" binding:"required"`
}

type resolveBranchRequestResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Request branchRequestResponse `json:"request"`
}

//	@Summary		Approve a branch request
//	@Description	Approves a pending stock request and transfers the stock between branches
//	@Tags			branch requests
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		integer							true	"Branch request ID"
//	@Param			request		body		resolveBranchRequestRequest		true	"Acting user"
//	@Success		200			{object}	resolveBranchRequestResponse	"Request approved successfully"
//	@Failure		404			"Not Found - Branch request does not exist"
//	@Failure		409			"Conflict - Request already resolved or insufficient stock"
//	@Router			/branch-requests/{requestID}/approve [patch]
func (server *Server) approveBranchRequest(ctx *gin.Context) {
	server.resolveBranchRequest(ctx, db.BranchRequestStatusApproved)
}

//	@Summary		Reject a branch request
//	@Description	Rejects a pending stock request
//	@Tags			branch requests
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		integer							true	"Branch request ID"
//	@Param			request		body		resolveBranchRequestRequest		true	"Acting user"
//	@Success		200			{object}	resolveBranchRequestResponse	"Request rejected successfully"
//	@Failure		404			"Not Found - Branch request does not exist"
//	@Failure		409			"Conflict - Request already resolved"
//	@Router			/branch-requests/{requestID}/reject [patch]
func (server *Server) rejectBranchRequest(ctx *gin.Context) {
	server.resolveBranchRequest(ctx, db.BranchRequestStatusRejected)
}

func (server *Server) resolveBranchRequest(ctx *gin.Context, status db.BranchRequestStatus) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	req := new(resolveBranchRequestRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var request db.BranchRequest
	if status == db.BranchRequestStatusApproved {
		request, err = server.dbStore.ApproveBranchRequestTx(ctx, db.ApproveBranchRequestTxParams{
			RequestID:  requestID,
			ApprovedBy: req.ActedBy,
		})
	} else {
		request, err = server.dbStore.RejectBranchRequestTx(ctx, db.RejectBranchRequestTxParams{
			RequestID:  requestID,
			RejectedBy: req.ActedBy,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": fmt.Sprintf("branch request %d not found", requestID)})
		case errors.Is(err, db.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
		case strings.Contains(err.Error(), "already"):
			ctx.JSON(http.StatusConflict, gin.H{"success": false, "message": ErrRequestNotPending.Error()})
		default:
			log.Err(err).Int64("request_id", requestID).Msg("failed to resolve branch request")
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": ErrInternalServer.Error()})
		}
		return
	}

	medicineName := fmt.Sprintf("medicine %d", request.MedicineID)
	if medicine, err := server.dbStore.GetMedicineByID(ctx, request.MedicineID); err == nil {
		medicineName = medicine.Name
	}

	// Both branches learn the outcome: the requester sees the decision, the
	// fulfilling branch keeps it in its history.
	server.notifyRequestEvent(ctx, request.FromBranchID, request, medicineName, string(status))
	server.notifyRequestEvent(ctx, request.ToBranchID, request, medicineName, string(status))

	ctx.JSON(http.StatusOK, resolveBranchRequestResponse{
		Success: true,
		Message: fmt.Sprintf("branch request %d %s", request.ID, request.Status),
		Request: server.toBranchRequestResponse(request, medicineName),
	})
}

// notifyRequestEvent persists a notification for the branch through the task
// queue and pushes a live event to its subscribers.
func (server *Server) notifyRequestEvent(ctx *gin.Context, branchID int64, request db.BranchRequest, medicineName string, kind string) {
	var title, message string
	switch kind {
	case "request":
		title = "Stock request"
		message = fmt.Sprintf("Branch %d requested %d units of %s [req: %d]",
			request.FromBranchID, request.QuantityRequested, medicineName, request.ID)
	default:
		title = "Stock request " + kind
		message = fmt.Sprintf("Request for %d units of %s was %s [req: %d]",
			request.QuantityRequested, medicineName, kind, request.ID)
	}

	requestID := request.ID
	err := server.taskDistributor.DistributeTaskSendNotification(ctx, &worker.PayloadSendNotification{
		BranchID:  branchID,
		Title:     title,
		Message:   message,
		Type:      string(db.NotificationTypeRequest),
		RequestID: &requestID,
	})
	if err != nil {
		log.Err(err).Int64("branch_id", branchID).Msg("failed to enqueue notification task")
	}

	server.eventSender.Broadcast(event.Event{
		Topic: event.BranchTopic(branchID),
		Type:  event.EventTypeRequestResolved,
		Data: gin.H{
			"branch_request_id": request.ID,
			"status":            string(request.Status),
		},
	})
}
