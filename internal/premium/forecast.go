package premium

import (
	"github.com/medinsure-ai/medinsure/shared/domain"
)

// Forecast horizon: three calendar years of months.
const forecastMonths = 36

// Holt smoothing coefficients, tuned for a short monthly premium series.
const (
	holtAlpha = 0.5 // level
	holtBeta  = 0.3 // trend
)

var provinceFactor = map[string]float64{
	"Ontario":          1.00,
	"Quebec":           0.93,
	"British Columbia": 1.06,
	"Alberta":          1.03,
	"Manitoba":         0.90,
	"Saskatchewan":     0.89,
	"Nova Scotia":      0.95,
}

var planFactor = map[string]float64{
	"Extended Health": 1.00,
	"Basic":           0.72,
	"Comprehensive":   1.28,
	"Dental Plus":     0.85,
}

var employerFactor = map[string]float64{
	"Individual": 1.15,
	"Small":      1.05,
	"Medium":     0.97,
	"Large":      0.88,
}

// ForecastPremiums projects monthly premiums for a profile over three years.
//
// The original pipeline selected the historical series of the closest
// matching portfolio member and ran Holt-Winters over it. Without that CSV,
// the history is reconstructed deterministically from the profile (base
// level from age/province/plan/employer, drift from inflation and risk
// score) and the same smoothing is applied: fit Holt's linear trend on the
// 24-month history, then extend the fitted level+trend forward.
func ForecastPremiums(req domain.ForecastRequest) domain.Forecast {
	history := syntheticHistory(req)
	level, trend := fitHolt(history)

	monthly := make([]domain.ForecastPoint, 0, forecastMonths)
	for m := 1; m <= forecastMonths; m++ {
		premium := level + float64(m)*trend
		if premium < 0 {
			premium = 0
		}
		monthly = append(monthly, domain.ForecastPoint{Month: m, Premium: round2(premium)})
	}

	yearly := make([]domain.ForecastYear, 0, forecastMonths/12)
	for y := 0; y < forecastMonths/12; y++ {
		var sum float64
		for _, p := range monthly[y*12 : (y+1)*12] {
			sum += p.Premium
		}
		yearly = append(yearly, domain.ForecastYear{Year: y + 1, AnnualPremium: round2(sum)})
	}

	return domain.Forecast{Profile: req, Monthly: monthly, Yearly: yearly}
}

// syntheticHistory builds the 24-month baseline series the smoother fits.
func syntheticHistory(req domain.ForecastRequest) []float64 {
	base := 160.0 + float64(req.Age)*3.2
	base *= factorOr(provinceFactor, req.Province, 1.0)
	base *= factorOr(planFactor, req.PlanType, 1.0)
	base *= factorOr(employerFactor, req.EmployerSize, 1.0)
	if req.Sex == "Female" || req.Sex == "female" {
		base *= 0.97
	}

	// Monthly drift: ~3.6% yearly inflation plus risk loading.
	drift := base * (0.003 + req.RiskScore*0.0006)

	history := make([]float64, 24)
	for i := range history {
		history[i] = base + drift*float64(i)
	}
	return history
}

// fitHolt runs double exponential smoothing over the series and returns the
// final level and trend.
func fitHolt(series []float64) (level, trend float64) {
	if len(series) < 2 {
		if len(series) == 1 {
			return series[0], 0
		}
		return 0, 0
	}

	level = series[0]
	trend = series[1] - series[0]
	for _, v := range series[1:] {
		prevLevel := level
		level = holtAlpha*v + (1-holtAlpha)*(level+trend)
		trend = holtBeta*(level-prevLevel) + (1-holtBeta)*trend
	}
	return level, trend
}

func factorOr(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
