package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
)

// parseReportRange reads from and to query parameters (RFC 3339 or
// YYYY-MM-DD). Defaults to the last 30 days.
func parseReportRange(ctx *gin.Context) (from, to time.Time, err error) {
	now := time.Now()
	from = now.AddDate(0, 0, -30)
	to = now

	parse := func(raw string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	}

	if raw := ctx.Query("from"); raw != "" {
		if from, err = parse(raw); err != nil {
			return from, to, errors.New("invalid from date")
		}
	}
	if raw := ctx.Query("to"); raw != "" {
		if to, err = parse(raw); err != nil {
			return from, to, errors.New("invalid to date")
		}
	}
	if to.Before(from) {
		return from, to, errors.New("to must not be before from")
	}

	return from, to, nil
}

type consultationReportResponse struct {
	BranchID int64     `json:"branch_id"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Total    int64     `json:"total"`
}

//	@Summary		Consultation report
//	@Description	Counts consultations of a branch over a date range, defaulting to the last 30 days
//	@Tags			reports
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer						true	"Branch ID"
//	@Param			from		query		string						false	"Range start (RFC 3339 or YYYY-MM-DD)"
//	@Param			to			query		string						false	"Range end (RFC 3339 or YYYY-MM-DD)"
//	@Success		200			{object}	consultationReportResponse	"Successfully generated report"
//	@Failure		400			"Bad Request - Invalid date range"
//	@Router			/branches/{branchID}/reports/consultations [get]
func (server *Server) reportConsultations(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	from, to, err := parseReportRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	total, err := server.dbStore.CountConsultations(ctx, db.CountConsultationsParams{
		BranchID: branchID,
		From:     from,
		To:       to,
	})
	if err != nil {
		log.Err(err).Msg("failed to count consultations")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, consultationReportResponse{
		BranchID: branchID,
		From:     from,
		To:       to,
		Total:    total,
	})
}

type stockMovementReportResponse struct {
	BranchID int64                          `json:"branch_id"`
	From     time.Time                      `json:"from"`
	To       time.Time                      `json:"to"`
	Rows     []db.SummarizeStockMovementRow `json:"rows"`
}

//	@Summary		Stock movement report
//	@Description	Summarizes stock-in and stock-out totals per medicine over a date range
//	@Tags			reports
//	@Produce		json
//	@Security		accessToken
//	@Param			branchID	path		integer						true	"Branch ID"
//	@Param			from		query		string						false	"Range start (RFC 3339 or YYYY-MM-DD)"
//	@Param			to			query		string						false	"Range end (RFC 3339 or YYYY-MM-DD)"
//	@Success		200			{object}	stockMovementReportResponse	"Successfully generated report"
//	@Failure		400			"Bad Request - Invalid date range"
//	@Router			/branches/{branchID}/reports/stock-movement [get]
func (server *Server) reportStockMovement(ctx *gin.Context) {
	branchID, err := parseIDParam(ctx, "branchID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	from, to, err := parseReportRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.dbStore.SummarizeStockMovement(ctx, db.SummarizeStockMovementParams{
		BranchID: branchID,
		From:     from,
		To:       to,
	})
	if err != nil {
		log.Err(err).Msg("failed to summarize stock movement")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, stockMovementReportResponse{
		BranchID: branchID,
		From:     from,
		To:       to,
		Rows:     rows,
	})
}
