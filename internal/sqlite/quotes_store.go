// Quote persistence. The quotes table snapshots the full configuration as
// serialized JSON so a quote survives later catalog edits unchanged.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fairwayworks/cartwright/pkg/types"
)

// SaveQuote creates or updates a quote. An empty QuoteID gets a generated
// UUID v7 and an empty Status defaults to draft. Returns the ID used.
func (s *Store) SaveQuote(q types.Quote) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}
	if q.Status == "" {
		q.Status = types.QuoteStatusDraft
	}
	if !types.ValidQuoteStatus(q.Status) {
		return "", types.ErrInvalidStatus
	}

	now := time.Now().UTC()
	if q.QuoteID == "" {
		q.QuoteID = newID()
		q.CreatedAt = now
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	snapshot, err := q.Configuration.Serialize()
	if err != nil {
		return "", fmt.Errorf("serializing configuration: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO quotes (quote_id, configuration, customer_name, customer_email, total, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(quote_id) DO UPDATE SET
		   configuration = excluded.configuration,
		   customer_name = excluded.customer_name,
		   customer_email = excluded.customer_email,
		   total = excluded.total, status = excluded.status,
		   updated_at = excluded.updated_at`,
		q.QuoteID, string(snapshot), q.CustomerName, q.CustomerEmail, q.Total, q.Status,
		q.CreatedAt.Format(time.RFC3339), q.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persisting quote: %w", err)
	}

	if err := s.persistTableJSONL("quotes", "quotes.jsonl"); err != nil {
		return "", fmt.Errorf("persisting quotes.jsonl: %w", err)
	}
	return q.QuoteID, nil
}

// GetQuote returns a quote by ID, or ErrNotFound.
func (s *Store) GetQuote(quoteID string) (types.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return types.Quote{}, err
	}
	if quoteID == "" {
		return types.Quote{}, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		"SELECT quote_id, configuration, customer_name, customer_email, total, status, created_at, updated_at FROM quotes WHERE quote_id = ?",
		quoteID,
	)
	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Quote{}, types.ErrNotFound
	}
	return q, err
}

// ListQuotes returns quotes ordered newest first. A non-empty status narrows
// the result to that status.
func (s *Store) ListQuotes(status string) ([]types.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}

	query := "SELECT quote_id, configuration, customer_name, customer_email, total, status, created_at, updated_at FROM quotes"
	args := []any{}
	if status != "" {
		if !types.ValidQuoteStatus(status) {
			return nil, types.ErrInvalidStatus
		}
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, quote_id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	var out []types.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// DeleteQuote removes a quote. Returns ErrNotFound when it does not exist.
func (s *Store) DeleteQuote(quoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if quoteID == "" {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM quotes WHERE quote_id = ?", quoteID)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := s.persistTableJSONL("quotes", "quotes.jsonl"); err != nil {
		return fmt.Errorf("persisting quotes.jsonl: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (types.Quote, error) {
	var q types.Quote
	var snapshot, status, createdAt, updatedAt string
	var custName, custEmail sql.NullString
	if err := row.Scan(&q.QuoteID, &snapshot, &custName, &custEmail, &q.Total, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Quote{}, err
		}
		return types.Quote{}, fmt.Errorf("scanning quote: %w", err)
	}

	cfg, err := types.DeserializeConfiguration([]byte(snapshot))
	if err != nil {
		return types.Quote{}, fmt.Errorf("parsing quote configuration: %w", err)
	}
	q.Configuration = cfg
	q.CustomerName = custName.String
	q.CustomerEmail = custEmail.String
	q.Status = status
	if q.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return types.Quote{}, fmt.Errorf("parsing quote created_at: %w", err)
	}
	if q.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return types.Quote{}, fmt.Errorf("parsing quote updated_at: %w", err)
	}
	return q, nil
}
