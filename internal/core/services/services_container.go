package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider, logger *slog.Logger, options ...ServiceOption) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.Ledger, options...)

	return &portssvc.ServiceContainer{
		Ledger: NewLoggingLedgerService(ledger, logger),
	}
}
