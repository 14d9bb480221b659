package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_edu_backend/internal/model"
)

func pct(v float64) *float64 { return &v }

func TestAssessRiskLow(t *testing.T) {
	got := AssessRisk(pct(90), pct(60), 80, DefaultConfig())

	assert.Equal(t, model.RiskLow, got.RiskLevel)
	assert.Empty(t, got.RiskReasons)
	assert.Equal(t, 0.0, got.Probability, "两项均高于阈值时概率为0")
}

func TestAssessRiskCritical(t *testing.T) {
	got := AssessRisk(pct(50), pct(10), 80, DefaultConfig())

	assert.Equal(t, model.RiskCritical, got.RiskLevel)
	require.Len(t, got.RiskReasons, 2)
	assert.Equal(t, "Attendance below 75%", got.RiskReasons[0], "出勤原因必须排第一")
	assert.Equal(t, "Marks below pass threshold", got.RiskReasons[1])
	assert.Greater(t, got.Probability, 0.0)
	assert.LessOrEqual(t, got.Probability, 100.0)
}

func TestAssessRiskModerate(t *testing.T) {
	cfg := DefaultConfig()
	// 及格线 20/34 ≈ 58.8%，55% 差 3.8 个百分点，在10点缓冲带内
	got := AssessRisk(pct(85), pct(55), 80, cfg)

	assert.Equal(t, model.RiskModerate, got.RiskLevel)
	assert.Equal(t, []string{"Marks below pass threshold"}, got.RiskReasons)
}

func TestAssessRiskHighOnAttendance(t *testing.T) {
	// 出勤缺口 25 个百分点 > 缓冲带，成绩正常 → High
	got := AssessRisk(pct(50), pct(70), 80, DefaultConfig())

	assert.Equal(t, model.RiskHigh, got.RiskLevel)
	assert.Equal(t, []string{"Attendance below 75%"}, got.RiskReasons)
}

func TestAssessRiskConsistencyReasonLast(t *testing.T) {
	got := AssessRisk(pct(50), pct(10), 20, DefaultConfig())

	require.Len(t, got.RiskReasons, 3)
	assert.Equal(t, "Inconsistent attendance pattern", got.RiskReasons[2])
}

func TestAssessRiskProbabilityMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := AssessRisk(pct(74), pct(70), 80, cfg).Probability
	for att := 70.0; att >= 0; att -= 10 {
		cur := AssessRisk(pct(att), pct(70), 80, cfg).Probability
		assert.Greater(t, cur, prev, "出勤越差概率越高 att=%v", att)
		assert.LessOrEqual(t, cur, 100.0)
		prev = cur
	}
}

func TestAssessRiskProbabilitySaturates(t *testing.T) {
	got := AssessRisk(pct(0), pct(0), 20, DefaultConfig())

	assert.Equal(t, 100.0, got.Probability, "概率封顶100而不是溢出")
	assert.Equal(t, model.RiskCritical, got.RiskLevel)
}

func TestAssessRiskNoData(t *testing.T) {
	got := AssessRisk(nil, nil, -1, DefaultConfig())

	assert.Equal(t, model.RiskLow, got.RiskLevel)
	assert.Empty(t, got.RiskReasons)
	assert.Equal(t, 0.0, got.Probability)
}

func TestAssessRiskIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	a := AssessRisk(pct(62.5), pct(41.2), 55, cfg)
	b := AssessRisk(pct(62.5), pct(41.2), 55, cfg)

	assert.Equal(t, a, b, "同样输入必须得到完全一致的输出")
}

func TestForecastCohortEmpty(t *testing.T) {
	got := ForecastCohort(nil, DefaultConfig())

	assert.Equal(t, model.ForecastResult{}, got, "空队列返回零值而不是NaN")
}

func cohortStudent(att, marks float64, stability int, cfg Config) model.CohortStudent {
	return model.CohortStudent{
		Assessment:     AssessRisk(&att, &marks, stability, cfg),
		StabilityScore: stability,
	}
}

func TestForecastCohort(t *testing.T) {
	cfg := DefaultConfig()
	cohort := []model.CohortStudent{
		cohortStudent(90, 80, 90, cfg), // 通过
		cohortStudent(85, 70, 80, cfg), // 通过
		cohortStudent(60, 30, 70, cfg), // Critical
		cohortStudent(95, 50, 60, cfg), // Moderate（差8.8点，缓冲带内）
	}

	got := ForecastCohort(cohort, cfg)

	assert.Equal(t, 4, got.TotalStudents)
	assert.InDelta(t, 50.0, got.CurrentPassRate, 0.001)
	assert.Equal(t, 1, got.AtRiskCount, "只统计 High/Critical")
	assert.InDelta(t, 75.0, got.ConsistencyScore, 0.001)
	assert.GreaterOrEqual(t, got.PredictedPassRate, 0.0)
	assert.LessOrEqual(t, got.PredictedPassRate, 100.0)
	assert.InDelta(t, got.PredictedPassRate-got.CurrentPassRate, got.Growth, 0.051)
}

func TestForecastCohortNegativeGrowth(t *testing.T) {
	cfg := DefaultConfig()
	cohort := []model.CohortStudent{
		cohortStudent(40, 70, 60, cfg),
		cohortStudent(50, 65, 55, cfg),
	}

	got := ForecastCohort(cohort, cfg)

	assert.Negative(t, got.Growth, "平均出勤低于阈值时预测应向下修正")
}
