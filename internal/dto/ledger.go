package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

// CreateTransactionRequest records a single income or expense.
// A zero or negative amount is stored as an expense.
type CreateTransactionRequest struct {
	Envelope  string           `json:"envelope" binding:"required,envelope_name"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Note      string           `json:"note" binding:"max=1024"`
	Timestamp *time.Time       `json:"timestamp,omitempty"`
}

// CreateTransferRequest moves a positive amount between two envelopes.
type CreateTransferRequest struct {
	Source      string           `json:"source" binding:"required,envelope_name"`
	Destination string           `json:"destination" binding:"required,envelope_name"`
	Amount      *decimal.Decimal `json:"amount" binding:"required,decimal_positive"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	EnvelopeID    string          `json:"envelopeID"`
	Envelope      string          `json:"envelope"`
	Kind          string          `json:"kind"` // income or expense
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	Timestamp     time.Time       `json:"timestamp"`
	TransferID    *string         `json:"transferID,omitempty"`
}

// TransferResponse holds both legs of a move.
type TransferResponse struct {
	TransferID string              `json:"transferID"`
	Debit      TransactionResponse `json:"debit"`
	Credit     TransactionResponse `json:"credit"`
}

// ListTransactionsParams defines query parameters for an envelope's history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"min=0"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of an envelope's history, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		EnvelopeID:    txn.EnvelopeID,
		Envelope:      txn.EnvelopeName,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Note:          txn.Note,
		Timestamp:     txn.Timestamp,
		TransferID:    txn.TransferID,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID: t.TransferID,
		Debit:      ToTransactionResponse(&t.Debit),
		Credit:     ToTransactionResponse(&t.Credit),
	}
}
