package analytics

import (
	"school_edu_backend/internal/model"
)

// attendanceLift 出勤率每高出阈值1个百分点，对预测通过率的修正量
const attendanceLift = 0.2

// ForecastCohort 对一个班级/系的学生快照做短期通过率预测。
// 确定性启发式：出勤稳定的队列预测值贴近当前通过率，
// 出勤差或不稳定的队列向下修正。不依赖历史训练数据。
func ForecastCohort(cohort []model.CohortStudent, cfg Config) model.ForecastResult {
	total := len(cohort)
	if total == 0 {
		return model.ForecastResult{}
	}

	passPct := cfg.PassPercent()
	passed := 0
	atRisk := 0
	var attSum, stabSum float64
	for _, s := range cohort {
		if s.Assessment.MarksPercentage >= passPct {
			passed++
		}
		if s.Assessment.RiskLevel == model.RiskHigh || s.Assessment.RiskLevel == model.RiskCritical {
			atRisk++
		}
		attSum += s.Assessment.AttendancePercentage
		stabSum += float64(s.StabilityScore)
	}

	current := float64(passed) / float64(total) * 100
	avgAttendance := attSum / float64(total)
	consistency := stabSum / float64(total)

	// 出勤修正按一致性打折：越不稳定，出勤优势越不可信
	adjustment := (avgAttendance - cfg.MinAttendance) * attendanceLift * (consistency / 100)
	predicted := clampPct(current + adjustment)

	return model.ForecastResult{
		CurrentPassRate:   round1(current),
		PredictedPassRate: round1(predicted),
		Growth:            round1(predicted - current),
		AtRiskCount:       atRisk,
		ConsistencyScore:  round1(consistency),
		TotalStudents:     total,
	}
}
