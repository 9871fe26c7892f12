package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/util"
	"github.com/uicmedicare/medicare-BE/internal/validator"
)

type createMedicineRequest struct {
	Name              string `json:"name" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Unit              string `json:"unit" binding:"required"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
}

//	@Summary		Create a new medicine
//	@Description	Adds a medicine to the catalog with a generated slug
//	@Tags			medicines
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createMedicineRequest	true	"Medicine creation request"
//	@Success		200		{object}	db.Medicine				"Medicine created successfully"
//	@Failure		409		"Conflict - Medicine already exists"
//	@Router			/medicines [post]
func (server *Server) createMedicine(ctx *gin.Context) {
	req := new(createMedicineRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validator.ValidateLowStockThreshold(req.LowStockThreshold); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("low_stock_threshold", err)}))
		return
	}

	medicine, err := server.dbStore.CreateMedicine(ctx, db.CreateMedicineParams{
		Name:              req.Name,
		Slug:              util.GenerateRandomSlug(req.Name),
		Category:          req.Category,
		Unit:              req.Unit,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueMedicineSlugConstraint {
			err = fmt.Errorf("medicine %s already exists", req.Name)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, medicine)
}

//	@Summary		List medicines
//	@Description	Retrieves the full medicine catalog
//	@Tags			medicines
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{array}	db.Medicine	"Successfully retrieved medicines"
//	@Failure		500	"Internal Server Error - Failed to retrieve medicines"
//	@Router			/medicines [get]
func (server *Server) listMedicines(ctx *gin.Context) {
	medicines, err := server.dbStore.ListMedicines(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list medicines")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, medicines)
}

//	@Summary		Get medicine by ID or slug
//	@Tags			medicines
//	@Produce		json
//	@Security		accessToken
//	@Param			medicineID	path		string		true	"Medicine ID or slug"
//	@Success		200			{object}	db.Medicine	"Successfully retrieved medicine"
//	@Failure		404			"Not Found - Medicine does not exist"
//	@Router			/medicines/{medicineID} [get]
func (server *Server) getMedicine(ctx *gin.Context) {
	medicineID, err := parseIDParam(ctx, "medicineID")
	if err != nil {
		// Fall back to slug lookup for pretty URLs.
		medicine, slugErr := server.dbStore.GetMedicineBySlug(ctx, ctx.Param("medicineID"))
		if slugErr == nil {
			ctx.JSON(http.StatusOK, medicine)
			return
		}

		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	medicine, err := server.dbStore.GetMedicineByID(ctx, medicineID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("medicine %d not found", medicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, medicine)
}

type updateMedicineRequest struct {
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Unit              *string `json:"unit"`
	LowStockThreshold *int32  `json:"low_stock_threshold"`
}

func (server *Server) updateMedicine(ctx *gin.Context) {
	medicineID, err := parseIDParam(ctx, "medicineID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(updateMedicineRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.LowStockThreshold != nil {
		if err = validator.ValidateLowStockThreshold(*req.LowStockThreshold); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("low_stock_threshold", err)}))
			return
		}
	}

	medicine, err := server.dbStore.UpdateMedicine(ctx, db.UpdateMedicineParams{
		ID:                medicineID,
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("medicine %d not found", medicineID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update medicine")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, medicine)
}

//	@Summary		List branch inventory
//	@Description	Retrieves the on-hand quantity of every medicine stocked by a branch
//	@Tags			inventory
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path	integer						true	"Branch ID"
//	@Success		200			{array}	db.ListBranchInventoryRow	"Successfully retrieved inventory"
//	@Router			/branches/{branchID}/inventory [get]
func (server *Server) listBranchInventory(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	inventory, err := server.dbStore.ListBranchInventory(ctx, branchID)
	if err != nil {
		log.Err(err).Msg("failed to list branch inventory")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, inventory)
}

func (server *Server) listLowStockInventory(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	inventory, err := server.dbStore.ListLowStockInventory(ctx, branchID)
	if err != nil {
		log.Err(err).Msg("failed to list low stock inventory")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, inventory)
}
