package mapping

import (
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		EnvelopeID:    d.EnvelopeID,
		EnvelopeName:  d.EnvelopeName,
		Amount:        d.Amount,
		Kind:          string(d.Kind),
		Note:          d.Note,
		OccurredAt:    d.Timestamp.UTC(),
		TransferID:    d.TransferID,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		EnvelopeID:    m.EnvelopeID,
		EnvelopeName:  m.EnvelopeName,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Note:          m.Note,
		Timestamp:     m.OccurredAt.UTC(),
		TransferID:    m.TransferID,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
