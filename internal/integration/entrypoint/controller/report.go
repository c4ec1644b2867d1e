// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-miniapp/backend/internal/application/usecase/report"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/dto"
)

// ReportController handles balance report endpoints.
type ReportController struct {
	buildUseCase *report.BuildReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(buildUseCase *report.BuildReportUseCase) *ReportController {
	return &ReportController{
		buildUseCase: buildUseCase,
	}
}

// Get handles GET /api/report requests. The period defaults to day;
// unrecognized tokens resolve to the widest window rather than failing.
func (c *ReportController) Get(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	period := report.Period(ctx.DefaultQuery("period", string(report.PeriodDay)))

	snapshot, err := c.buildUseCase.Execute(ctx.Request.Context(), report.BuildReportInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(snapshot))
}
