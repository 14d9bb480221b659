package analytics

import (
	"fmt"
	"math"

	"school_edu_backend/internal/model"
)

// 概率曲线系数。只是启发式严重度指数，不是统计概率：
// 两项指标均高于阈值时为0，任一项越陷越深就单调升高，封顶100。
const (
	attendanceSeverity  = 1.5
	marksSeverity       = 1.2
	consistencySeverity = 0.5
)

// AssessRisk 由当前出勤率和加权得分率给出四档风险。
// 每次调用都从头计算，档位之间没有内部迁移。
// attendancePct / marksPct 为 nil 表示该维度暂无数据，不计入失分。
// stability 传 AnalyzeTrend 的结果，<0 表示无趋势数据。
func AssessRisk(attendancePct, marksPct *float64, stability int, cfg Config) model.RiskAssessment {
	passPct := cfg.PassPercent()

	var attShort, marksShort float64 // 距各自阈值的缺口（百分点），≥0
	if attendancePct != nil && *attendancePct < cfg.MinAttendance {
		attShort = cfg.MinAttendance - *attendancePct
	}
	if marksPct != nil && *marksPct < passPct {
		marksShort = passPct - *marksPct
	}
	attBelow := attShort > 0
	marksBelow := marksShort > 0

	level := model.RiskLow
	switch {
	case attBelow && marksBelow:
		level = model.RiskCritical
	case attBelow:
		level = bandLevel(attShort, cfg.ModerateBand)
	case marksBelow:
		level = bandLevel(marksShort, cfg.ModerateBand)
	}

	// 原因顺序固定：出勤、成绩、一致性。消费端按首见标题去重，勿改顺序。
	reasons := []string{}
	if attBelow {
		reasons = append(reasons, fmt.Sprintf("Attendance below %.0f%%", cfg.MinAttendance))
	}
	if marksBelow {
		reasons = append(reasons, "Marks below pass threshold")
	}
	consistencyPenalty := 0.0
	if stability >= 0 && stability < lowStabilityCutoff {
		reasons = append(reasons, "Inconsistent attendance pattern")
		consistencyPenalty = float64(lowStabilityCutoff-stability) * consistencySeverity
	}

	probability := math.Round(attShort*attendanceSeverity + marksShort*marksSeverity + consistencyPenalty)

	a := model.RiskAssessment{
		RiskLevel:   level,
		Probability: clampPct(probability),
		RiskReasons: reasons,
	}
	if attendancePct != nil {
		a.AttendancePercentage = round1(clampPct(*attendancePct))
	}
	if marksPct != nil {
		a.MarksPercentage = round1(clampPct(*marksPct))
	}
	return a
}

// bandLevel 单项失守：缺口落在缓冲带内记 Moderate，超出记 High
func bandLevel(shortfall, band float64) model.RiskLevel {
	if shortfall <= band {
		return model.RiskModerate
	}
	return model.RiskHigh
}
