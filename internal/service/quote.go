package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/medinsure-ai/medinsure/internal/premium"
	"github.com/medinsure-ai/medinsure/shared/domain"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

const estimateNote = "This is an estimate based on historical data and may not reflect an actual insurance quote."

// QuoteStorage persists estimate rows. Optional: the site estimates without
// saving anything when no storage is configured.
type QuoteStorage interface {
	SaveQuote(q domain.Quote) error
	QuotesByEmail(email string, limit int) ([]domain.Quote, error)
}

type Quotes struct {
	storage      QuoteStorage // nil disables persistence
	historyLimit int
}

func NewQuotes(storage QuoteStorage, historyLimit int) *Quotes {
	return &Quotes{storage: storage, historyLimit: historyLimit}
}

// Estimate computes the premium prediction with its explanation and, when
// storage is configured, records the quote. A failed save is logged but
// does not withhold the estimate from the user.
func (s *Quotes) Estimate(req domain.QuoteRequest) (domain.QuoteResult, error) {
	est := premium.Estimate(req)

	result := domain.QuoteResult{
		Prediction:  est,
		ModelInput:  req,
		Explanation: premium.Explain(req, premium.DefaultExplanationSize),
		Note:        estimateNote,
	}

	if s.storage != nil {
		quote := domain.Quote{
			ID:              uuid.NewString(),
			UserEmail:       req.UserEmail,
			Age:             req.Age,
			Sex:             req.Sex,
			BMI:             req.BMI,
			Children:        req.Children,
			Smoker:          req.Smoker,
			Region:          req.Region,
			PredictedAmount: est.PredictedAmount,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.storage.SaveQuote(quote); err != nil {
			logger.Log.Error("failed to persist quote", "quote_id", quote.ID, "error", err)
		}
	}

	return result, nil
}

// Forecast projects premiums for a profile over three years.
func (s *Quotes) Forecast(req domain.ForecastRequest) (domain.Forecast, error) {
	return premium.ForecastPremiums(req), nil
}

// History returns the most recent persisted quotes for an email, newest
// first. Without storage it returns an empty history.
func (s *Quotes) History(email string) ([]domain.Quote, error) {
	if s.storage == nil {
		return nil, nil
	}
	return s.storage.QuotesByEmail(email, s.historyLimit)
}
