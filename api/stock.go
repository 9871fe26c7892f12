package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/validator"
	"github.com/uicmedicare/medicare-BE/internal/worker"
)

type stockInRequest struct {
	MedicineID int64      `json:"medicine_id" binding:"required"`
	Quantity   int32      `json:"quantity" binding:"required"`
	Supplier   *string    `json:"supplier"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

//	@Summary		Stock in medicine
//	@Description	Records a received stock batch and increments the branch inventory
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer				true	"Branch ID"
//	@Param			request		body		stockInRequest		true	"Stock-in details"
//	@Success		200			{object}	db.StockInTxResult	"Stock recorded successfully"
//	@Failure		404			"Not Found - Medicine does not exist"
//	@Router			/branches/{branchID}/stock-in [post]
func (server *Server) stockIn(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(stockInRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = validator.ValidateQuantity(req.Quantity); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("quantity", err)}))
		return
	}

	if _, err = server.dbStore.GetMedicineByID(ctx, req.MedicineID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("medicine %d not found", req.MedicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	authPayload := authPayloadFromContext(ctx)

	result, err := server.dbStore.StockInTx(ctx, db.StockInTxParams{
		BranchID:   branchID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
		Supplier:   req.Supplier,
		ExpiryDate: req.ExpiryDate,
		CreatedBy:  authPayload.Subject,
	})
	if err != nil {
		log.Err(err).Msg("failed to stock in")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

type stockOutRequest struct {
	MedicineID int64  `json:"medicine_id" binding:"required"`
	Quantity   int32  `json:"quantity" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

//	@Summary		Stock out medicine
//	@Description	Records an outgoing stock batch and decrements the branch inventory
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer				true	"Branch ID"
//	@Param			request		body		stockOutRequest		true	"Stock-out details"
//	@Success		200			{object}	db.StockOutTxResult	"Stock recorded successfully"
//	@Failure		404			"Not Found - Branch holds no stock of this medicine"
//	@Failure		409			"Conflict - Insufficient stock"
//	@Router			/branches/{branchID}/stock-out [post]
func (server *Server) stockOut(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(stockOutRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = validator.ValidateQuantity(req.Quantity); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("quantity", err)}))
		return
	}

	authPayload := authPayloadFromContext(ctx)

	result, err := server.dbStore.StockOutTx(ctx, db.StockOutTxParams{
		BranchID:   branchID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		CreatedBy:  authPayload.Subject,
	})
	if err != nil {
		if errors.Is(err, db.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("branch %d holds no stock of medicine %d", branchID, req.MedicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to stock out")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// A stock-out can push a medicine below its threshold. The monitor also
	// catches this on its next scan; alerting here keeps the feed fresh.
	server.maybeAlertLowStock(ctx, branchID, req.MedicineID, result.Inventory.QuantityOnHand)

	ctx.JSON(http.StatusOK, result)
}

func (server *Server) maybeAlertLowStock(ctx *gin.Context, branchID, medicineID int64, quantityOnHand int32) {
	medicine, err := server.dbStore.GetMedicineByID(ctx, medicineID)
	if err != nil {
		log.Err(err).Msg("failed to get medicine for low stock check")
		return
	}

	if quantityOnHand > medicine.LowStockThreshold {
		return
	}

	err = server.taskDistributor.DistributeTaskLowStockAlert(ctx, &worker.PayloadLowStockAlert{
		BranchID:       branchID,
		MedicineID:     medicineID,
		MedicineName:   medicine.Name,
		QuantityOnHand: quantityOnHand,
		Threshold:      medicine.LowStockThreshold,
		Unit:           medicine.Unit,
		NotifyEmail:    server.config.LowStockAlertEmail,
	})
	if err != nil {
		log.Err(err).Msg("failed to enqueue low stock alert task")
	}
}

//	@Summary		List stock batches
//	@Description	Retrieves the stock movement history of a branch
//	@Tags			inventory
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path	integer			true	"Branch ID"
//	@Param			medicine_id	query	integer			false	"Filter by medicine ID"
//	@Success		200			{array}	db.StockBatch	"Successfully retrieved stock batches"
//	@Router			/branches/{branchID}/stock-batches [get]
func (server *Server) listStockBatches(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	limit, offset := parsePagination(ctx)

	arg := db.ListStockBatchesParams{
		BranchID: branchID,
		Limit:    limit,
		Offset:   offset,
	}

	if raw := ctx.Query("medicine_id"); raw != "" {
		medicineID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || medicineID <= 0 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid medicine_id")))
			return
		}
		arg.MedicineID = medicineID
	}

	batches, err := server.dbStore.ListStockBatches(ctx, arg)
	if err != nil {
		log.Err(err).Msg("failed to list stock batches")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, batches)
}
