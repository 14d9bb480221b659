package analytics

import (
	"school_edu_backend/internal/model"
)

// WeightedMarks 对一条成绩记录做加权汇总。
// 各分项先截断到 [0, 满分] 再加权；非法输入应在录入接口被拒，
// 引擎侧只做兜底截断，保证结果始终有界。
func WeightedMarks(entry model.MarkEntry, cfg Config) model.MarksSummary {
	t1 := clampComponent(entry.Test1, cfg.MaxTest1)
	t2 := clampComponent(entry.Test2, cfg.MaxTest2)
	as := clampComponent(entry.Assignment, cfg.MaxAssignment)

	total := round1(t1*cfg.Test1Weight + t2*cfg.Test2Weight + as*cfg.AssignmentWeight)

	pct := 0.0
	if max := cfg.MaxWeightedTotal(); max > 0 {
		pct = clampPct(total / max * 100)
	}

	return model.MarksSummary{
		Test1:         t1,
		Test2:         t2,
		Assignment:    as,
		WeightedTotal: total,
		Percentage:    round1(pct),
		Passed:        total >= cfg.PassMarks,
	}
}

// ClassAverage 已登分记录的加权总分算术平均，无记录时为 0
func ClassAverage(entries []model.MarkEntry, cfg Config) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += WeightedMarks(e, cfg).WeightedTotal
	}
	return round1(sum / float64(len(entries)))
}

// IsLowScoring 得分率低于50%的科目进入“薄弱科目”，用于生成学习建议
func IsLowScoring(s model.MarksSummary) bool {
	return s.Percentage < 50
}

func clampComponent(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
