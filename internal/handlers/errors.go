package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/budgetwise/internal/apperrors"
)

// statusForError maps ledger errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes {"error": ...}. Internal failures get a generic message.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}
	logger.Warn(failureMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}
