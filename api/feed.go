package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/uicmedicare/medicare-BE/internal/feed"
)

type branchFeedResponse struct {
	Preview feed.Preview `json:"preview"`
	AllRead bool         `json:"all_read"`
}

// getBranchFeed returns the merged notification feed of a branch: a bounded
// preview plus unread counters. Pass refresh=true to force a fetch instead of
// serving the last poll's snapshot.
//
//	@Summary		Get the merged notification feed of a branch
//	@Description	Returns the deduplicated feed preview with unread counters
//	@Tags			feed
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer				true	"Branch ID"
//	@Param			refresh		query		boolean				false	"Force a fetch instead of serving the cached snapshot"
//	@Param			limit		query		integer				false	"Maximum preview entries"
//	@Success		200			{object}	branchFeedResponse	"Successfully retrieved feed"
//	@Router			/branches/{branchID}/feed [get]
func (server *Server) getBranchFeed(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	aggregator := server.feedHub.Branch(branchID)

	if ctx.Query("refresh") == "true" {
		if err = aggregator.Refresh(ctx); err != nil {
			log.Err(err).Int64("branch_id", branchID).Msg("failed to refresh feed")
			ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	ctx.JSON(http.StatusOK, branchFeedResponse{
		Preview: feed.BuildPreview(aggregator.Snapshot(), limit),
		AllRead: aggregator.UnreadCount() == 0,
	})
}

// openBranchFeed marks the whole branch feed as read, mirroring the user
// opening the notification panel.
//
//	@Summary		Open the branch feed
//	@Description	Marks the whole feed as read, reverting locally if the remote call fails
//	@Tags			feed
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path	integer	true	"Branch ID"
//	@Success		200			"Feed marked read"
//	@Failure		502			"Bad Gateway - Mark-read could not be confirmed"
//	@Router			/branches/{branchID}/feed/open [post]
func (server *Server) openBranchFeed(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	aggregator := server.feedHub.Branch(branchID)

	if err = aggregator.Open(ctx); err != nil {
		log.Err(err).Int64("branch_id", branchID).Msg("failed to mark feed read")
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"unread":  aggregator.UnreadCount(),
	})
}

// resolveFeedRequest approves or rejects a stock request through the feed
// aggregator, so the optimistic overlay and rollback semantics apply.
func (server *Server) resolveFeedRequest(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := authPayloadFromContext(ctx)
	aggregator := server.feedHub.Branch(branchID)

	if strings.HasSuffix(ctx.FullPath(), "/approve") {
		err = aggregator.Approve(ctx, requestID, authPayload.Subject)
	} else {
		err = aggregator.Reject(ctx, requestID, authPayload.Subject)
	}
	if err != nil {
		log.Err(err).Int64("request_id", requestID).Msg("failed to resolve request through feed")
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
