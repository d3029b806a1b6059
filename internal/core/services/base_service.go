package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/platform/logging"
)

// BaseService provides common logging functionality for service decorators
type BaseService struct {
	Logger *slog.Logger
}

// GetLogger gets the logger from context or returns the service's own one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != slog.Default() || s.Logger == nil {
		return logger
	}
	return s.Logger
}

// LogError logs an error with consistent formatting. Caller mistakes (validation,
// not found, conflicts) are logged at warn level, everything else at error.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)

	if isClientError(err) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrConflict)
}
