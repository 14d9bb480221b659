package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_edu_backend/internal/model"
)

func TestWeightedMarks(t *testing.T) {
	// 20×0.3 + 25×0.3 + 35×0.4 = 6 + 7.5 + 14 = 27.5
	entry := model.MarkEntry{Test1: 20, Test2: 25, Assignment: 35}

	got := WeightedMarks(entry, DefaultConfig())

	assert.InDelta(t, 27.5, got.WeightedTotal, 0.001)
	assert.True(t, got.Passed) // 27.5 ≥ 20
}

func TestWeightedMarksClamping(t *testing.T) {
	entry := model.MarkEntry{Test1: -5, Test2: 99, Assignment: 35}

	got := WeightedMarks(entry, DefaultConfig())

	assert.Equal(t, 0.0, got.Test1, "负分截断到0")
	assert.Equal(t, 30.0, got.Test2, "超满分截断到满分")
	assert.LessOrEqual(t, got.Percentage, 100.0)
	assert.GreaterOrEqual(t, got.Percentage, 0.0)
}

func TestWeightedMarksFailing(t *testing.T) {
	entry := model.MarkEntry{Test1: 5, Test2: 5, Assignment: 10}

	got := WeightedMarks(entry, DefaultConfig())

	// 5×0.3 + 5×0.3 + 10×0.4 = 7.0 < 20
	assert.InDelta(t, 7.0, got.WeightedTotal, 0.001)
	assert.False(t, got.Passed)
	assert.True(t, IsLowScoring(got))
}

func TestClassAverage(t *testing.T) {
	cfg := DefaultConfig()
	entries := []model.MarkEntry{
		{Test1: 20, Test2: 25, Assignment: 35}, // 27.5
		{Test1: 10, Test2: 15, Assignment: 20}, // 15.5
	}

	assert.InDelta(t, 21.5, ClassAverage(entries, cfg), 0.001)
	assert.Equal(t, 0.0, ClassAverage(nil, cfg))
}

func TestConfigValidateWeights(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate(), "0.3/0.3/0.4 合法")

	bad := cfg
	bad.AssignmentWeight = 0.3 // 总和0.9
	assert.Error(t, bad.Validate())

	tolerated := cfg
	tolerated.AssignmentWeight = 0.405 // 总和1.005，容差±0.01内
	assert.NoError(t, tolerated.Validate())
}

func TestConfigValidateRanges(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.MinAttendance = 120 },
		func(c *Config) { c.MinAttendance = -1 },
		func(c *Config) { c.Test1Weight = -0.1; c.Test2Weight = 0.7 },
		func(c *Config) { c.MaxTest1 = 0 },
		func(c *Config) { c.PassMarks = 999 },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}

func TestMaxWeightedTotal(t *testing.T) {
	// 30×0.3 + 30×0.3 + 40×0.4 = 34
	assert.InDelta(t, 34.0, DefaultConfig().MaxWeightedTotal(), 0.001)

	// 原系统另一处口径：满分50/50/50
	alt := DefaultConfig()
	alt.MaxTest1, alt.MaxTest2, alt.MaxAssignment = 50, 50, 50
	assert.InDelta(t, 50.0, alt.MaxWeightedTotal(), 0.001)
}
