package domain

import "time"

// QuoteRequest is the premium estimate input from the quote form.
type QuoteRequest struct {
	Age       int     `json:"age" validate:"required,gte=18,lte=90"`
	Sex       string  `json:"sex" validate:"required,oneof=male female"`
	BMI       float64 `json:"bmi" validate:"required,gte=10,lte=60"`
	Children  int     `json:"children" validate:"gte=0,lte=10"`
	Smoker    string  `json:"smoker" validate:"required,oneof=yes no"`
	Region    string  `json:"region" validate:"required,oneof=southwest southeast northwest northeast"`
	UserEmail string  `json:"userEmail"`
}

// Estimate is the headline prediction shown on the results page.
type Estimate struct {
	PredictedAmount float64 `json:"predicted_amount"`
	RiskLabel       string  `json:"risk_label"`
	MonthlyEstimate float64 `json:"monthly_estimate"`
}

// FactorImpact is one row of the estimate explanation: how much a single
// input moved the prediction away from the baseline, in dollars.
type FactorImpact struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// QuoteResult is the full /api/predict payload.
type QuoteResult struct {
	Prediction  Estimate       `json:"prediction"`
	ModelInput  QuoteRequest   `json:"model_input"`
	Explanation []FactorImpact `json:"explainability"`
	Note        string         `json:"note"`
}

// Quote is a persisted estimate row.
type Quote struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"user_email"`
	Age             int       `json:"age"`
	Sex             string    `json:"sex"`
	BMI             float64   `json:"bmi"`
	Children        int       `json:"children"`
	Smoker          string    `json:"smoker"`
	Region          string    `json:"region"`
	PredictedAmount float64   `json:"predicted_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// ForecastRequest is the multi-year forecast input.
type ForecastRequest struct {
	Age          int     `json:"age" validate:"required,gte=18,lte=90"`
	Sex          string  `json:"sex" validate:"required"`
	Province     string  `json:"province" validate:"required"`
	EmployerSize string  `json:"employer_size" validate:"required"`
	PlanType     string  `json:"plan_type" validate:"required"`
	RiskScore    float64 `json:"risk_score" validate:"gte=0,lte=5"`
}

// ForecastPoint is one forecast month.
type ForecastPoint struct {
	Month   int     `json:"month"`
	Premium float64 `json:"premium"`
}

// ForecastYear aggregates a forecast calendar year.
type ForecastYear struct {
	Year          int     `json:"year"`
	AnnualPremium float64 `json:"annual_premium"`
}

// Forecast is the full /api/forecast payload.
type Forecast struct {
	Profile ForecastRequest `json:"profile"`
	Monthly []ForecastPoint `json:"monthly"`
	Yearly  []ForecastYear  `json:"yearly"`
}
