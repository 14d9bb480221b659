package analytics

import (
	"math"
	"sort"

	"school_edu_backend/internal/model"
)

// trendDeadband 前后半程出勤率相差超过该百分点数才算趋势变化。
// 小样本噪声下避免 Improving/Declining 来回跳，勿调小。
const trendDeadband = 8.0

// minTrendRecords 低于4条记录不做趋势判断，返回固定默认值
const minTrendRecords = 4

// AnalyzeTrend 按日期排序后对半切分，比较前后半程出勤率得出趋势；
// 稳定性由整段序列（出勤=100/缺勤=0）的总体方差导出：
// stability = 100 − sqrt(variance)。全勤或全缺方差为0，稳定性100——
// 稳定性度量的是规律性而不是好坏，这是有意的。
func AnalyzeTrend(records []model.AttendanceRecord) model.TrendResult {
	if len(records) < minTrendRecords {
		return model.TrendResult{Trend: model.TrendStable, Stability: 50}
	}

	sorted := make([]model.AttendanceRecord, len(records))
	copy(sorted, records)
	// 稳定排序，同一天的记录保持录入顺序
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	mid := len(sorted) / 2 // 奇数长度多出的一条归后半程
	p1 := presenceRate(sorted[:mid])
	p2 := presenceRate(sorted[mid:])

	trend := model.TrendStable
	diff := p2 - p1
	if diff > trendDeadband {
		trend = model.TrendImproving
	} else if diff < -trendDeadband {
		trend = model.TrendDeclining
	}

	return model.TrendResult{
		Trend:         trend,
		Stability:     stabilityScore(sorted),
		FirstHalfPct:  round1(p1),
		SecondHalfPct: round1(p2),
	}
}

func presenceRate(records []model.AttendanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	present := 0
	for _, r := range records {
		if r.Status == model.Present {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100
}

func stabilityScore(records []model.AttendanceRecord) int {
	n := float64(len(records))
	if n == 0 {
		return 50
	}

	var sum float64
	for _, r := range records {
		if r.Status == model.Present {
			sum += 100
		}
	}
	mean := sum / n

	var variance float64
	for _, r := range records {
		v := 0.0
		if r.Status == model.Present {
			v = 100
		}
		variance += (v - mean) * (v - mean)
	}
	variance /= n

	score := math.Round(100 - math.Sqrt(variance))
	return int(clampPct(score))
}
