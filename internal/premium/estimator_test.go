package premium

import (
	"math"
	"testing"

	"github.com/medinsure-ai/medinsure/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() domain.QuoteRequest {
	return domain.QuoteRequest{
		Age: 39, Sex: "female", BMI: 30, Children: 0, Smoker: "no", Region: "southeast",
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	a := Estimate(baseProfile())
	b := Estimate(baseProfile())
	assert.Equal(t, a, b)
}

func TestEstimate_SmokerCostsMore(t *testing.T) {
	nonSmoker := baseProfile()
	smoker := baseProfile()
	smoker.Smoker = "yes"

	ns := Estimate(nonSmoker)
	s := Estimate(smoker)
	assert.Greater(t, s.PredictedAmount, ns.PredictedAmount)
	// Smoking is the dominant factor: the gap exceeds any other single swing.
	assert.Greater(t, s.PredictedAmount-ns.PredictedAmount, 15000.0)
}

func TestEstimate_AgeMonotonic(t *testing.T) {
	young := baseProfile()
	young.Age = 25
	old := baseProfile()
	old.Age = 60

	assert.Greater(t, Estimate(old).PredictedAmount, Estimate(young).PredictedAmount)
}

func TestEstimate_MonthlyIsAnnualOverTwelve(t *testing.T) {
	e := Estimate(baseProfile())
	assert.InDelta(t, e.PredictedAmount/12, e.MonthlyEstimate, 0.01)
}

func TestEstimate_FloorsAtMinimum(t *testing.T) {
	req := domain.QuoteRequest{Age: 18, Sex: "female", BMI: 16, Children: 0, Smoker: "no", Region: "southwest"}
	e := Estimate(req)
	assert.GreaterOrEqual(t, e.PredictedAmount, minAnnual)
}

func TestRiskLabelThresholds(t *testing.T) {
	tests := []struct {
		annual float64
		want   string
	}{
		{9500, "Low"},
		{10000, "Low"},
		{10001, "Medium"},
		{20001, "High"},
		{30001, "Very High"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLabel(tt.annual), "annual=%v", tt.annual)
	}
}

func TestEstimate_RiskLabelMatchesAmount(t *testing.T) {
	smoker := baseProfile()
	smoker.Smoker = "yes"
	smoker.Age = 60
	smoker.BMI = 36

	e := Estimate(smoker)
	require.Greater(t, e.PredictedAmount, 30000.0)
	assert.Equal(t, "Very High", e.RiskLabel)
}

func TestExplain_SortedByAbsoluteImpact(t *testing.T) {
	req := baseProfile()
	req.Smoker = "yes"
	req.Age = 60

	impacts := Explain(req, DefaultExplanationSize)
	require.Len(t, impacts, DefaultExplanationSize)
	assert.Equal(t, "smoker", impacts[0].Feature)
	for i := 1; i < len(impacts); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(impacts[i-1].Impact), math.Abs(impacts[i].Impact))
	}
}

func TestExplain_ImpactsSumToPrediction(t *testing.T) {
	req := baseProfile()
	req.Smoker = "yes"
	req.Children = 2

	total := baseAnnual
	for _, f := range Explain(req, 0) { // 0 = all factors
		total += f.Impact
	}
	assert.InDelta(t, Estimate(req).PredictedAmount, total, 0.01)
}
