package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
)

type createBranchRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	ContactNumber *string `json:"contact_number"`
}

//	@Summary		Create a new branch
//	@Description	Adds a clinic branch, admin only
//	@Tags			branches
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createBranchRequest	true	"Branch creation request"
//	@Success		200		{object}	db.Branch			"Branch created successfully"
//	@Failure		403		"Forbidden - Admin role required"
//	@Router			/branches [post]
func (server *Server) createBranch(ctx *gin.Context) {
	req := new(createBranchRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	branch, err := server.dbStore.CreateBranch(ctx, db.CreateBranchParams{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		log.Err(err).Msg("failed to create branch")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, branch)
}

//	@Summary		List branches
//	@Tags			branches
//	@Produce		json
//	@Success		200	{array}	db.Branch	"Successfully retrieved branches"
//	@Failure		500	"Internal Server Error - Failed to retrieve branches"
//	@Router			/branches [get]
func (server *Server) listBranches(ctx *gin.Context) {
	branches, err := server.dbStore.ListBranches(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list branches")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, branches)
}

func (server *Server) getBranch(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	branch, err := server.dbStore.GetBranchByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("branch %d not found", branchID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get branch")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, branch)
}

type updateBranchRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
}

func (server *Server) updateBranch(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(updateBranchRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	branch, err := server.dbStore.UpdateBranch(ctx, db.UpdateBranchParams{
		ID:            branchID,
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("branch %d not found", branchID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update branch")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, branch)
}
