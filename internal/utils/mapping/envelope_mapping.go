package mapping

import (
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/models"
)

// ToModelEnvelope converts a domain Envelope to a model Envelope
func ToModelEnvelope(d domain.Envelope) models.Envelope {
	return models.Envelope{
		EnvelopeID: d.EnvelopeID,
		Name:       d.Name,
		Budget:     d.Budget,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

// ToDomainEnvelope converts a model Envelope to a domain Envelope
func ToDomainEnvelope(m models.Envelope) domain.Envelope {
	return domain.Envelope{
		EnvelopeID: m.EnvelopeID,
		Name:       m.Name,
		Budget:     m.Budget,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

// ToDomainEnvelopeSlice converts a slice of model Envelopes to domain Envelopes
func ToDomainEnvelopeSlice(ms []models.Envelope) []domain.Envelope {
	ds := make([]domain.Envelope, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEnvelope(m)
	}
	return ds
}
