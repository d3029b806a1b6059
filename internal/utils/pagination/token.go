package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/budgetwise/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// ErrInvalidToken is returned for tokens that were not produced by EncodeToken.
var ErrInvalidToken = fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)

// Cursor identifies the last transaction of a page. History is ordered by
// timestamp descending with the transaction ID as tie-breaker.
type Cursor struct {
	Timestamp     time.Time
	TransactionID string
}

// EncodeToken creates a base64 encoded token from a transaction timestamp and ID.
func EncodeToken(timestamp time.Time, transactionID string) string {
	return EncodeMultiFieldToken(timestamp.UTC().Format(timeFormat), transactionID)
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w (split)", ErrInvalidToken)
	}

	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w (timestamp parse): %v", ErrInvalidToken, err)
	}
	return Cursor{Timestamp: ts.UTC(), TransactionID: parts[1]}, nil
}

// After reports whether a row at (ts, id) sorts strictly after the cursor, i.e.
// belongs on a later page.
func (c Cursor) After(ts time.Time, id string) bool {
	if ts.Equal(c.Timestamp) {
		return id < c.TransactionID
	}
	return ts.Before(c.Timestamp)
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w (base64 decode): %v", ErrInvalidToken, err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// Page trims a result fetched with limit+1 rows and derives the next token from
// the last row kept. key extracts the cursor fields of a row.
func Page[T any](rows []T, limit int, key func(T) (time.Time, string)) ([]T, *string) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	ts, id := key(rows[limit-1])
	token := EncodeToken(ts, id)
	return rows, &token
}
