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

type monthHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newMonthHandler(ls portssvc.LedgerSvcFacade) *monthHandler {
	return &monthHandler{ledgerService: ls}
}

func registerMonthRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newMonthHandler(ledgerService)

	months := rg.Group("/months/:period")
	{
		months.GET("", h.getMonthStatus)
		months.POST("/close", h.closeMonth)
	}
}

// closeMonth carries every nonzero balance into the following month. A month can only be closed once.
func (h *monthHandler) closeMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid period")
		return
	}

	logger = logger.With(slog.String("period", period.String()))
	if err := h.ledgerService.CloseMonth(c.Request.Context(), period.Year, period.Month); err != nil {
		respondWithError(c, logger, err, "Failed to close month")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *monthHandler) getMonthStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid period")
		return
	}

	closed, err := h.ledgerService.IsMonthClosed(c.Request.Context(), period.Year, period.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to read month status")
		return
	}

	c.JSON(http.StatusOK, dto.MonthStatusResponse{Period: period.String(), Closed: closed})
}
