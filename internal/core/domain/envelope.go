package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxEnvelopeNameLength mirrors the width of envelopes.name in storage.
const MaxEnvelopeNameLength = 64

// Envelope represents a named budget bucket that owns transactions.
type Envelope struct {
	EnvelopeID string          `json:"envelopeID"` // Primary Key (UUID)
	Name       string          `json:"name"`       // Unique, case-sensitive
	Budget     decimal.Decimal `json:"budget"`     // Informational only, never enforced
	CreatedAt  time.Time       `json:"createdAt"`  // Date the envelope was first referenced
}

// ValidateEnvelopeName checks the name constraints shared by every write path.
// Names are matched exactly, so no trimming or case folding happens here.
func ValidateEnvelopeName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrInvalidEnvelopeName)
	}
	if n := utf8.RuneCountInString(name); n > MaxEnvelopeNameLength {
		return fmt.Errorf("%w: name is %d characters, limit is %d", apperrors.ErrInvalidEnvelopeName, n, MaxEnvelopeNameLength)
	}
	return nil
}
