package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_edu_backend/internal/model"
)

func day(n int) time.Time {
	return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
}

func rec(n int, status model.AttendanceStatus) model.AttendanceRecord {
	return model.AttendanceRecord{Date: day(n), Status: status, SubjectID: 1, StudentID: 1}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, DefaultConfig())

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Attended)
	assert.Nil(t, s.Percentage, "无记录时百分比应为 null 而不是 0")
	assert.Equal(t, 0, s.ClassesNeeded)
}

func TestSummarizeCounts(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Present),
		rec(2, model.Absent),
		rec(3, model.Present),
		rec(4, model.Present),
	}

	s := Summarize(records, DefaultConfig())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Attended)
	require.NotNil(t, s.Percentage)
	assert.InDelta(t, 75.0, *s.Percentage, 0.001)
	assert.GreaterOrEqual(t, *s.Percentage, 0.0)
	assert.LessOrEqual(t, *s.Percentage, 100.0)
}

func TestSummarizeMalformedStatusCountsAbsent(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Present),
		rec(2, model.AttendanceStatus("")),
		rec(3, model.AttendanceStatus("late")),
	}

	s := Summarize(records, DefaultConfig())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Attended)
}

func TestClassesNeeded(t *testing.T) {
	tests := []struct {
		name      string
		attended  int
		total     int
		threshold float64
		want      int
	}{
		{"规格用例 10/20@75", 10, 20, 75, 20},
		{"已达标为0", 18, 20, 75, 0},
		{"恰好达标为0", 15, 20, 75, 0},
		{"无记录为0", 0, 0, 75, 0},
		{"全缺勤", 0, 4, 75, 12},
		{"阈值0为0", 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassesNeeded(tt.attended, tt.total, tt.threshold))
		})
	}
}

func TestClassesNeededNeverNegative(t *testing.T) {
	for attended := 0; attended <= 30; attended++ {
		for total := attended; total <= 30; total++ {
			got := ClassesNeeded(attended, total, 75)
			assert.GreaterOrEqual(t, got, 0, "attended=%d total=%d", attended, total)
		}
	}
}

func TestClassesNeededFullThreshold(t *testing.T) {
	// 100% 目标不可恢复，退化为99%口径，但必须有限且非负
	got := ClassesNeeded(5, 10, 100)
	assert.GreaterOrEqual(t, got, 0)
}
