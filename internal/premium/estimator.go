// Package premium computes annual premium estimates and multi-year
// forecasts. The estimate is a deterministic additive factor model: each
// input moves the prediction away from a portfolio baseline by a dollar
// amount, and those same amounts double as the per-factor explanation shown
// to the user. Factor ordering matches the documented ranking: smoking
// status dominates, then age, BMI, children, region, sex.
package premium

import (
	"math"
	"sort"

	"github.com/medinsure-ai/medinsure/shared/domain"
)

// baseAnnual is the portfolio-average annual premium the factor impacts are
// relative to.
const baseAnnual = 13270.0

// minAnnual floors the estimate; no profile quotes below this.
const minAnnual = 1200.0

// DefaultExplanationSize caps the factor rows returned to the UI.
const DefaultExplanationSize = 5

var regionImpact = map[string]float64{
	"northeast": 800,
	"southeast": 450,
	"northwest": -350,
	"southwest": -900,
}

// factorImpacts computes the dollar contribution of every input relative to
// the baseline profile (39-year-old non-smoking reference).
func factorImpacts(req domain.QuoteRequest) []domain.FactorImpact {
	smoker := -4200.0
	if req.Smoker == "yes" {
		smoker = 16400.0
	}

	age := float64(req.Age-39) * 275
	bmi := (clamp(req.BMI, 15, 55) - 30) * 400
	children := float64(req.Children)*600 - 650

	sex := -150.0
	if req.Sex == "male" {
		sex = 150.0
	}

	return []domain.FactorImpact{
		{Feature: "smoker", Impact: round2(smoker)},
		{Feature: "age", Impact: round2(age)},
		{Feature: "bmi", Impact: round2(bmi)},
		{Feature: "children", Impact: round2(children)},
		{Feature: "region", Impact: round2(regionImpact[req.Region])},
		{Feature: "sex", Impact: round2(sex)},
	}
}

// Estimate returns the headline prediction for a profile.
func Estimate(req domain.QuoteRequest) domain.Estimate {
	annual := baseAnnual
	for _, f := range factorImpacts(req) {
		annual += f.Impact
	}
	if annual < minAnnual {
		annual = minAnnual
	}
	annual = round2(annual)

	return domain.Estimate{
		PredictedAmount: annual,
		RiskLabel:       riskLabel(annual),
		MonthlyEstimate: round2(annual / 12),
	}
}

// Explain returns up to maxFeatures factor impacts, largest absolute
// contribution first.
func Explain(req domain.QuoteRequest, maxFeatures int) []domain.FactorImpact {
	impacts := factorImpacts(req)
	sort.SliceStable(impacts, func(i, j int) bool {
		return math.Abs(impacts[i].Impact) > math.Abs(impacts[j].Impact)
	})
	if maxFeatures > 0 && len(impacts) > maxFeatures {
		impacts = impacts[:maxFeatures]
	}
	return impacts
}

func riskLabel(annual float64) string {
	switch {
	case annual > 30000:
		return "Very High"
	case annual > 20000:
		return "High"
	case annual > 10000:
		return "Medium"
	default:
		return "Low"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
