package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

// EnvelopeResponse defines the data returned for an envelope.
type EnvelopeResponse struct {
	EnvelopeID string          `json:"envelopeID"`
	Name       string          `json:"name"`
	Budget     decimal.Decimal `json:"budget"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListEnvelopesResponse wraps the list of envelopes.
type ListEnvelopesResponse struct {
	Envelopes []EnvelopeResponse `json:"envelopes"`
}

func ToEnvelopeResponse(e *domain.Envelope) EnvelopeResponse {
	return EnvelopeResponse{
		EnvelopeID: e.EnvelopeID,
		Name:       e.Name,
		Budget:     e.Budget,
		CreatedAt:  e.CreatedAt,
	}
}

func ToListEnvelopesResponse(envelopes []domain.Envelope) ListEnvelopesResponse {
	resp := ListEnvelopesResponse{Envelopes: make([]EnvelopeResponse, len(envelopes))}
	for i := range envelopes {
		resp.Envelopes[i] = ToEnvelopeResponse(&envelopes[i])
	}
	return resp
}
