package model

// 引擎输出类型。字段名被学生端、家长端、系主任端多处前端同时消费，
// 改名会同时破坏三个界面，保持稳定。

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

type Trend string

const (
	TrendImproving Trend = "Improving"
	TrendStable    Trend = "Stable"
	TrendDeclining Trend = "Declining"
)

// AttendanceSummary 出勤汇总。Percentage 在无课时记录时为 null。
type AttendanceSummary struct {
	Total         int      `json:"total"`
	Attended      int      `json:"attended"`
	Percentage    *float64 `json:"percentage"`
	ClassesNeeded int      `json:"classesNeeded"` // 还需连续出勤多少节才能达标
}

// TrendResult 出勤趋势与稳定性，前后半程出勤率用于前端展示。
type TrendResult struct {
	Trend         Trend   `json:"trend"`
	Stability     int     `json:"stability"`
	FirstHalfPct  float64 `json:"firstHalfPct"`
	SecondHalfPct float64 `json:"secondHalfPct"`
}

// MarksSummary 加权内部成绩
type MarksSummary struct {
	Test1         float64 `json:"test1"`
	Test2         float64 `json:"test2"`
	Assignment    float64 `json:"assignment"`
	WeightedTotal float64 `json:"weightedTotal"` // 保留一位小数
	Percentage    float64 `json:"percentage"`    // 加权总分占加权满分的百分比
	Passed        bool    `json:"passed"`
}

// RiskAssessment 单个学生的风险评估，每次请求重新计算，不落库。
type RiskAssessment struct {
	AttendancePercentage float64   `json:"attendancePercentage"`
	MarksPercentage      float64   `json:"marksPercentage"`
	RiskLevel            RiskLevel `json:"riskLevel"`
	Probability          float64   `json:"probability"`
	RiskReasons          []string  `json:"riskReasons"`
}

// SubjectBreakdown 学生仪表盘的按科目明细行
type SubjectBreakdown struct {
	SubjectID   uint              `json:"subjectId"`
	SubjectName string            `json:"subjectName"`
	Attendance  AttendanceSummary `json:"attendance"`
	Trend       TrendResult       `json:"trend"`
	Marks       *MarksSummary     `json:"marks"` // 未登分时为 null
}

// StudentAnalytics 学生/家长端看到的完整分析视图
type StudentAnalytics struct {
	StudentID  uint               `json:"studentId"`
	Overall    AttendanceSummary  `json:"overall"`
	Trend      TrendResult        `json:"trend"`
	Risk       RiskAssessment     `json:"risk"`
	Subjects   []SubjectBreakdown `json:"subjects"`
	LowestSubs []SubjectBreakdown `json:"lowestSubjects"` // 加权得分率<50%的科目，驱动学习建议
}

// ForecastResult 班级/系级的通过率预测
type ForecastResult struct {
	CurrentPassRate   float64 `json:"currentPassRate"`
	PredictedPassRate float64 `json:"predictedPassRate"`
	Growth            float64 `json:"growth"` // 可为负
	AtRiskCount       int     `json:"atRiskCount"`
	ConsistencyScore  float64 `json:"consistencyScore"`
	TotalStudents     int     `json:"totalStudents"`
}

// CohortStudent 队列预测的单个学生输入快照
type CohortStudent struct {
	StudentID      uint           `json:"studentId"`
	Name           string         `json:"name"`
	Assessment     RiskAssessment `json:"assessment"`
	StabilityScore int            `json:"stabilityScore"`
}

// DepartmentOverview 系主任端报表
type DepartmentOverview struct {
	DepartmentID    uint               `json:"departmentId"`
	SubjectAverages map[string]float64 `json:"subjectAverages"` // 科目名 -> 平均出勤率
	Forecast        ForecastResult     `json:"forecast"`
	AtRiskStudents  []CohortStudent    `json:"atRiskStudents"`
}
