package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school_edu_backend/internal/model"
)

func TestAnalyzeTrendTooFewRecords(t *testing.T) {
	cases := [][]model.AttendanceRecord{
		nil,
		{rec(1, model.Present)},
		{rec(1, model.Absent), rec(2, model.Absent), rec(3, model.Absent)},
	}
	for _, records := range cases {
		got := AnalyzeTrend(records)
		assert.Equal(t, model.TrendStable, got.Trend)
		assert.Equal(t, 50, got.Stability, "不足4条记录时一律返回固定默认值")
	}
}

func TestAnalyzeTrendImproving(t *testing.T) {
	// 前半程 2/4 出勤（50%），后半程 4/4（100%），diff=50 > 8
	records := []model.AttendanceRecord{
		rec(1, model.Present), rec(2, model.Absent),
		rec(3, model.Present), rec(4, model.Absent),
		rec(5, model.Present), rec(6, model.Present),
		rec(7, model.Present), rec(8, model.Present),
	}

	got := AnalyzeTrend(records)

	assert.Equal(t, model.TrendImproving, got.Trend)
	assert.InDelta(t, 50.0, got.FirstHalfPct, 0.001)
	assert.InDelta(t, 100.0, got.SecondHalfPct, 0.001)
}

func TestAnalyzeTrendDeclining(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Present), rec(2, model.Present),
		rec(3, model.Present), rec(4, model.Present),
		rec(5, model.Absent), rec(6, model.Absent),
		rec(7, model.Absent), rec(8, model.Present),
	}

	got := AnalyzeTrend(records)

	assert.Equal(t, model.TrendDeclining, got.Trend)
}

func TestAnalyzeTrendDeadband(t *testing.T) {
	// 前半程 12/13 ≈ 92.3%，后半程 13/13 = 100%，diff ≈ 7.7 ≤ 8 → Stable
	var records []model.AttendanceRecord
	for i := 1; i <= 26; i++ {
		status := model.Present
		if i == 5 {
			status = model.Absent
		}
		records = append(records, rec(i, status))
	}

	got := AnalyzeTrend(records)

	assert.Equal(t, model.TrendStable, got.Trend, "±8个百分点死区内不报趋势")
}

func TestAnalyzeTrendUnsortedInput(t *testing.T) {
	// 乱序传入，引擎自己按日期排序
	records := []model.AttendanceRecord{
		rec(8, model.Present), rec(1, model.Present),
		rec(6, model.Present), rec(3, model.Present),
		rec(5, model.Present), rec(2, model.Absent),
		rec(7, model.Present), rec(4, model.Absent),
	}

	got := AnalyzeTrend(records)

	assert.Equal(t, model.TrendImproving, got.Trend)
	assert.InDelta(t, 50.0, got.FirstHalfPct, 0.001)
}

func TestStabilityAllPresent(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Present), rec(2, model.Present),
		rec(3, model.Present), rec(4, model.Present),
	}

	got := AnalyzeTrend(records)

	assert.Equal(t, 100, got.Stability, "全勤方差为0，稳定性100")
}

func TestStabilityAllAbsent(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Absent), rec(2, model.Absent),
		rec(3, model.Absent), rec(4, model.Absent),
	}

	got := AnalyzeTrend(records)

	// 稳定性衡量规律性而不是好坏：持续缺勤也是“稳定”的
	assert.Equal(t, 100, got.Stability)
	assert.Equal(t, model.TrendStable, got.Trend)
}

func TestStabilityErratic(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, model.Present), rec(2, model.Absent),
		rec(3, model.Present), rec(4, model.Absent),
		rec(5, model.Present), rec(6, model.Absent),
	}

	got := AnalyzeTrend(records)

	// 一半一半时标准差50，稳定性恰为下限50
	assert.Equal(t, 50, got.Stability)
	assert.GreaterOrEqual(t, got.Stability, 0)
	assert.LessOrEqual(t, got.Stability, 100)
}
