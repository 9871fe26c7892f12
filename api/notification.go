package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
)

const defaultNotificationLimit = 50

func (server *Server) notificationLimit(ctx *gin.Context) int32 {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultNotificationLimit)))
	if err != nil || limit < 1 || limit > 200 {
		limit = defaultNotificationLimit
	}
	return int32(limit)
}

//	@Summary		List branch notifications
//	@Description	Retrieves the newest notifications of a branch
//	@Tags			notifications
//	@Produce		json
//	@Param			branchID	path	integer			true	"Branch ID"
//	@Param			limit		query	integer			false	"Maximum notifications to return"	default(50)
//	@Success		200			{array}	db.Notification	"Successfully retrieved notifications"
//	@Router			/branches/{branchID}/notifications [get]
func (server *Server) listBranchNotifications(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notifications, err := server.dbStore.ListNotificationsByBranch(ctx, db.ListNotificationsByBranchParams{
		BranchID: branchID,
		Limit:    server.notificationLimit(ctx),
	})
	if err != nil {
		log.Err(err).Msg("failed to list notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (server *Server) listLowStockNotifications(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notifications, err := server.dbStore.ListLowStockNotifications(ctx, db.ListNotificationsByBranchParams{
		BranchID: branchID,
		Limit:    server.notificationLimit(ctx),
	})
	if err != nil {
		log.Err(err).Msg("failed to list low stock notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

//	@Summary		Mark branch notifications read
//	@Description	Marks every notification of a branch as read
//	@Tags			notifications
//	@Produce		json
//	@Param			branchID	path	integer	true	"Branch ID"
//	@Success		200			"All notifications marked read"
//	@Failure		500			"Internal Server Error - Failed to mark notifications read"
//	@Router			/branches/{branchID}/notifications/mark-read [post]
func (server *Server) markBranchNotificationsRead(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := server.dbStore.MarkBranchNotificationsRead(ctx, branchID)
	if err != nil {
		log.Err(err).Int64("branch_id", branchID).Msg("failed to mark notifications read")
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": ErrInternalServer.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}
