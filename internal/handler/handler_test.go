package handler

import (
	"context"
	"html/template"

	"github.com/medinsure-ai/medinsure/shared/config"
	"github.com/medinsure-ai/medinsure/shared/domain"
)

// --- Mocks shared by the handler tests ---

type MockAuth struct {
	SignUpFunc func(candidate domain.SignupCandidate) (domain.Account, error)
	LoginFunc  func(creds domain.Credentials) (domain.Account, error)
}

func (m *MockAuth) SignUp(candidate domain.SignupCandidate) (domain.Account, error) {
	return m.SignUpFunc(candidate)
}

func (m *MockAuth) Login(creds domain.Credentials) (domain.Account, error) {
	return m.LoginFunc(creds)
}

type MockSession struct {
	CurrentFunc func() (domain.Account, bool)
	ClearFunc   func() error
}

func (m *MockSession) Current() (domain.Account, bool) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc()
	}
	return domain.Account{}, false
}

func (m *MockSession) Clear() error {
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}

type MockQuotes struct {
	EstimateFunc func(req domain.QuoteRequest) (domain.QuoteResult, error)
	ForecastFunc func(req domain.ForecastRequest) (domain.Forecast, error)
	HistoryFunc  func(email string) ([]domain.Quote, error)
}

func (m *MockQuotes) Estimate(req domain.QuoteRequest) (domain.QuoteResult, error) {
	return m.EstimateFunc(req)
}

func (m *MockQuotes) Forecast(req domain.ForecastRequest) (domain.Forecast, error) {
	return m.ForecastFunc(req)
}

func (m *MockQuotes) History(email string) ([]domain.Quote, error) {
	return m.HistoryFunc(email)
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

func newTestHandler(auth *MockAuth, session *MockSession, quotes *MockQuotes, db Pinger) *Handler {
	if session == nil {
		session = &MockSession{}
	}
	return New(auth, session, quotes, db, testTemplates(), nil, config.Public{})
}

// testTemplates covers every page the handlers render, each template just
// echoing enough to assert on.
func testTemplates() map[string]*template.Template {
	names := []string{"index.html", "about.html", "faq.html", "signup.html",
		"login.html", "quote.html", "results.html", "history.html"}
	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		templates[name] = template.Must(template.New(name).Parse(
			name + " err={{.Common.Error}} ok={{.Common.Success}} email={{.Common.EmailPlaceholder}}"))
	}
	return templates
}
