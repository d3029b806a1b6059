package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/dto"
	"github.com/SscSPs/budgetwise/internal/middleware"
)

type envelopeHandler struct {
	envelopeService portssvc.LedgerReaderSvc
}

func newEnvelopeHandler(es portssvc.LedgerReaderSvc) *envelopeHandler {
	return &envelopeHandler{envelopeService: es}
}

func registerEnvelopeRoutes(rg *gin.RouterGroup, envelopeService portssvc.LedgerReaderSvc) {
	h := newEnvelopeHandler(envelopeService)

	envelopes := rg.Group("/envelopes")
	{
		envelopes.GET("", h.listEnvelopes)
		envelopes.GET("/:name/transactions", h.listEnvelopeTransactions)
	}
}

func (h *envelopeHandler) listEnvelopes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	envelopes, err := h.envelopeService.ListEnvelopes(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list envelopes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEnvelopesResponse(envelopes))
}

// listEnvelopeTransactions pages through an envelope's history, newest first.
// Pass the returned nextToken back to fetch the following page.
func (h *envelopeHandler) listEnvelopeTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	logger = logger.With(slog.String("envelope", name))
	txns, nextToken, err := h.envelopeService.ListEnvelopeTransactions(c.Request.Context(), name, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	})
}
