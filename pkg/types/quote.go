package types

import "time"

// Quote statuses. A quote progresses through these during its lifecycle.
const (
	QuoteStatusDraft     = "draft"
	QuoteStatusSubmitted = "submitted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
)

// validQuoteStatuses is the set of recognized quote status values.
var validQuoteStatuses = map[string]bool{
	QuoteStatusDraft:     true,
	QuoteStatusSubmitted: true,
	QuoteStatusAccepted:  true,
	QuoteStatusRejected:  true,
}

// ValidQuoteStatus reports whether status is a recognized quote status.
func ValidQuoteStatus(status string) bool {
	return validQuoteStatuses[status]
}

// Quote is a persisted quote request: a snapshot of a configuration together
// with the price computed for it at submission time. The snapshot is frozen;
// later catalog edits only affect recalculation, never the stored figures.
type Quote struct {
	QuoteID       string        `json:"quote_id"`      // UUID v7, generated on save.
	Configuration Configuration `json:"configuration"` // Frozen configuration snapshot.
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Total         float64       `json:"total"`  // Total at submission time.
	Status        string        `json:"status"` // One of the QuoteStatus constants.
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SetStatus sets the quote status. Returns ErrInvalidStatus if the value is
// not recognized. Idempotent: setting the current status succeeds.
func (q *Quote) SetStatus(status string) error {
	if !validQuoteStatuses[status] {
		return ErrInvalidStatus
	}
	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	return nil
}
