package analytics

import (
	"math"

	"school_edu_backend/internal/model"
)

// Summarize 把一串点名记录汇总为出勤数据。
// 没有任何记录时 Percentage 为 nil，前端据此渲染空态而不是 0%。
// status 残缺或取值非法的记录一律按缺勤计。
func Summarize(records []model.AttendanceRecord, cfg Config) model.AttendanceSummary {
	total := len(records)
	attended := 0
	for _, r := range records {
		if r.Status == model.Present {
			attended++
		}
	}

	s := model.AttendanceSummary{
		Total:    total,
		Attended: attended,
	}
	if total == 0 {
		return s
	}

	pct := clampPct(float64(attended) / float64(total) * 100)
	s.Percentage = &pct
	s.ClassesNeeded = ClassesNeeded(attended, total, cfg.MinAttendance)
	return s
}

// ClassesNeeded 假设此后每节都出勤，最少还要上多少节课才能把出勤率拉回阈值。
// 对 (a+x)/(t+x) ≥ p 解闭式：x = ceil((p·t − a)/(1−p))，下限 0。
// threshold 为百分比（如 75）。没有任何课时记录时返回 0。
func ClassesNeeded(attended, total int, threshold float64) int {
	if total <= 0 {
		return 0
	}
	p := threshold / 100
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		// 100% 的目标已缺勤就永远追不回来，按 99% 给一个可执行的数
		p = 0.99
	}

	a := float64(attended)
	t := float64(total)
	if a/t >= p {
		return 0
	}

	x := int(math.Ceil((p*t - a) / (1 - p)))
	if x < 0 {
		return 0
	}
	return x
}
