package handler

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/medinsure-ai/medinsure/shared/domain"
	internal_errors "github.com/medinsure-ai/medinsure/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashValue(t *testing.T, rec *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name && c.MaxAge > 0 {
			decoded, err := base64.StdEncoding.DecodeString(c.Value)
			require.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}

func signupForm() url.Values {
	return url.Values{
		"firstName": {"A"}, "lastName": {"B"},
		"email": {"a@b.com"}, "password": {"pw"},
	}
}

func TestSignupPost_RedirectsToLogin(t *testing.T) {
	auth := &MockAuth{
		SignUpFunc: func(c domain.SignupCandidate) (domain.Account, error) {
			return domain.Account{Email: c.Email}, nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.SignupPostHandler(rec, formRequest("/signup", signupForm()))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Contains(t, flashValue(t, rec, flashCookieSuccess), "Account created")
	assert.Equal(t, "a@b.com", flashValue(t, rec, emailPrefillCookie))
}

func TestSignupPost_DuplicateStaysOnSignup(t *testing.T) {
	auth := &MockAuth{
		SignUpFunc: func(domain.SignupCandidate) (domain.Account, error) {
			return domain.Account{}, internal_errors.ErrDuplicateEmail
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.SignupPostHandler(rec, formRequest("/signup", signupForm()))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
	assert.Contains(t, flashValue(t, rec, flashCookieError), "already exists")
}

func TestLoginPost(t *testing.T) {
	t.Run("success goes to quote page", func(t *testing.T) {
		auth := &MockAuth{
			LoginFunc: func(creds domain.Credentials) (domain.Account, error) {
				return domain.Account{Email: creds.Email}, nil
			},
		}
		h := newTestHandler(auth, nil, nil, nil)

		rec := httptest.NewRecorder()
		h.LoginPostHandler(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"pw"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/quote", rec.Header().Get("Location"))
	})

	t.Run("failure flashes one generic message", func(t *testing.T) {
		auth := &MockAuth{
			LoginFunc: func(domain.Credentials) (domain.Account, error) {
				return domain.Account{}, internal_errors.ErrInvalidCredentials
			},
		}
		h := newTestHandler(auth, nil, nil, nil)

		rec := httptest.NewRecorder()
		h.LoginPostHandler(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"bad"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Equal(t, "Invalid email or password.", flashValue(t, rec, flashCookieError))
		assert.Equal(t, "a@b.com", flashValue(t, rec, emailPrefillCookie))
	})
}

func TestLogoutPost(t *testing.T) {
	cleared := false
	session := &MockSession{ClearFunc: func() error { cleared = true; return nil }}
	h := newTestHandler(nil, session, nil, nil)

	rec := httptest.NewRecorder()
	h.LogoutPostHandler(rec, httptest.NewRequest("POST", "/logout", nil))

	assert.True(t, cleared)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestQuotePost(t *testing.T) {
	form := url.Values{
		"age": {"28"}, "sex": {"male"}, "bmi": {"24.5"},
		"children": {"0"}, "smoker": {"no"}, "region": {"southwest"},
	}

	t.Run("renders results", func(t *testing.T) {
		quotes := &MockQuotes{
			EstimateFunc: func(req domain.QuoteRequest) (domain.QuoteResult, error) {
				assert.Equal(t, 28, req.Age)
				assert.Equal(t, 24.5, req.BMI)
				return domain.QuoteResult{}, nil
			},
		}
		h := newTestHandler(nil, nil, quotes, nil)

		rec := httptest.NewRecorder()
		h.QuotePostHandler(rec, formRequest("/quote", form))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "results.html")
	})

	t.Run("signed-in email is attached", func(t *testing.T) {
		var got domain.QuoteRequest
		quotes := &MockQuotes{
			EstimateFunc: func(req domain.QuoteRequest) (domain.QuoteResult, error) {
				got = req
				return domain.QuoteResult{}, nil
			},
		}
		h := newTestHandler(nil, sessionWith("a@b.com"), quotes, nil)

		rec := httptest.NewRecorder()
		h.QuotePostHandler(rec, formRequest("/quote", form))

		assert.Equal(t, "a@b.com", got.UserEmail)
	})

	t.Run("bad number redirects back", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad.Set("age", "abc")

		h := newTestHandler(nil, nil, &MockQuotes{}, nil)
		rec := httptest.NewRecorder()
		h.QuotePostHandler(rec, formRequest("/quote", bad))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/quote", rec.Header().Get("Location"))
	})
}

func TestHistoryGet(t *testing.T) {
	t.Run("signed out redirects to login", func(t *testing.T) {
		h := newTestHandler(nil, &MockSession{}, nil, nil)

		rec := httptest.NewRecorder()
		h.HistoryGetHandler(rec, httptest.NewRequest("GET", "/history", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("signed in renders history", func(t *testing.T) {
		quotes := &MockQuotes{
			HistoryFunc: func(email string) ([]domain.Quote, error) {
				return []domain.Quote{{ID: "q1"}}, nil
			},
		}
		h := newTestHandler(nil, sessionWith("a@b.com"), quotes, nil)

		rec := httptest.NewRecorder()
		h.HistoryGetHandler(rec, httptest.NewRequest("GET", "/history", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "history.html")
	})
}

func TestFlashRoundTrip(t *testing.T) {
	auth := &MockAuth{
		LoginFunc: func(domain.Credentials) (domain.Account, error) {
			return domain.Account{}, internal_errors.ErrInvalidCredentials
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	// First request sets the flash.
	rec := httptest.NewRecorder()
	h.LoginPostHandler(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"bad"}}))

	// Second request carries the cookies and renders them once.
	req := httptest.NewRequest("GET", "/login", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.LoginGetHandler(rec2, req)

	assert.Contains(t, rec2.Body.String(), "err=Invalid email or password.")
	assert.Contains(t, rec2.Body.String(), "email=a@b.com")

	// The render must also expire the cookies.
	expired := 0
	for _, c := range rec2.Result().Cookies() {
		if c.MaxAge < 0 {
			expired++
		}
	}
	assert.GreaterOrEqual(t, expired, 2)
}
