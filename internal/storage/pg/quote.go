package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/medinsure-ai/medinsure/shared/domain"
)

// SaveQuote is the public entry point for recording an estimate. It wraps
// the insert in a transaction.
func (s *Storage) SaveQuote(q domain.Quote) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveQuote(tx, q)
	})
}

// QuotesByEmail is a public, read-only method returning a user's most
// recent quotes, newest first. It uses the main connection pool.
func (s *Storage) QuotesByEmail(email string, limit int) ([]domain.Quote, error) {
	return s.quotesByEmail(s.db, email, limit)
}

func (s *Storage) saveQuote(q Querier, quote domain.Quote) error {
	userEmail := sql.NullString{String: quote.UserEmail, Valid: quote.UserEmail != ""}
	_, err := q.Exec(`INSERT INTO quotes(id, user_email, age, sex, bmi, children, smoker, region, predicted_amount, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		quote.ID, userEmail, quote.Age, quote.Sex, quote.BMI, quote.Children,
		quote.Smoker, quote.Region, quote.PredictedAmount, quote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

func (s *Storage) quotesByEmail(q Querier, email string, limit int) ([]domain.Quote, error) {
	rows, err := q.Query(`SELECT id, user_email, age, sex, bmi, children, smoker, region, predicted_amount, created_at
		FROM quotes WHERE user_email = $1 ORDER BY created_at DESC LIMIT $2`, email, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		var userEmail sql.NullString
		if err := rows.Scan(&quote.ID, &userEmail, &quote.Age, &quote.Sex, &quote.BMI,
			&quote.Children, &quote.Smoker, &quote.Region, &quote.PredictedAmount, &quote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quote.UserEmail = userEmail.String
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	return quotes, nil
}
