package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/dto"
	"github.com/SscSPs/budgetwise/internal/middleware"
)

// ledgerHandler handles HTTP requests that write to the ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerWriterSvc
}

func newLedgerHandler(ls portssvc.LedgerWriterSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes for transactions and transfers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerWriterSvc) {
	h := newLedgerHandler(ledgerService)

	rg.POST("/transactions", h.createTransaction)
	rg.POST("/transfers", h.createTransfer)
}

// createTransaction records an income (positive amount) or expense against an
// envelope, creating the envelope on first use.
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("envelope", req.Envelope))
	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), req.Envelope, *req.Amount, req.Note, req.Timestamp)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// createTransfer moves funds between two envelopes.
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("source", req.Source), slog.String("destination", req.Destination))
	transfer, err := h.ledgerService.Move(c.Request.Context(), req.Source, req.Destination, *req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to move funds")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}
