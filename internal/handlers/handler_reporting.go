package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/budgetwise/internal/core/domain"
	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/dto"
	"github.com/SscSPs/budgetwise/internal/middleware"
)

// reportingHandler handles HTTP requests related to balance reports
type reportingHandler struct {
	reportingService portssvc.LedgerReportSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.LedgerReportSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to balance reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.LedgerReportSvc) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.getReport)
		reportingGroup.GET("/months/:period", h.getMonthReport)
	}
}

// getReport sums every envelope between start and end (YYYY-MM-DD, both inclusive).
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "date range, use start=YYYY-MM-DD&end=YYYY-MM-DD")
		return
	}

	report, err := h.reportingService.Report(c.Request.Context(), params.Start, params.End)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *reportingHandler) getMonthReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid period")
		return
	}

	logger = logger.With(slog.String("period", period.String()))
	report, err := h.reportingService.ReportMonth(c.Request.Context(), period.Year, period.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
