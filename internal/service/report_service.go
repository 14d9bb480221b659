package service

import (
	"fmt"
	"strings"
	"time"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ReportService 导出系主任/教师用的 xlsx 报表
type ReportService struct {
	UserRepo       *repository.UserRepository
	SubjectService *SubjectService
	Attendance     *AttendanceService
	Analytics      *AnalyticsService
}

func NewReportService(
	userRepo *repository.UserRepository,
	subjectService *SubjectService,
	attendance *AttendanceService,
	analytics *AnalyticsService,
) *ReportService {
	return &ReportService{
		UserRepo:       userRepo,
		SubjectService: subjectService,
		Attendance:     attendance,
		Analytics:      analytics,
	}
}

// AttendanceRegister 出勤登记表：行=学生，列=已点名日期，格=P/A
func (s *ReportService) AttendanceRegister(subjectID uint) (*excelize.File, string, error) {
	subject, err := s.SubjectService.GetByID(subjectID)
	if err != nil {
		return nil, "", err
	}

	records, dates, err := s.Attendance.SubjectRegister(subjectID)
	if err != nil {
		return nil, "", err
	}

	students, err := s.UserRepo.FindStudentsByDepartment(subject.DepartmentID)
	if err != nil {
		return nil, "", err
	}

	// (student, date) -> status
	statusByCell := make(map[string]model.AttendanceStatus, len(records))
	for _, r := range records {
		statusByCell[cellKey(r.StudentID, r.Date)] = r.Status
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Roll No")
	f.SetCellValue(sheet, "B1", "Name")
	for i, d := range dates {
		col, _ := excelize.ColumnNumberToName(i + 3)
		f.SetCellValue(sheet, col+"1", d.Format("01-02"))
	}
	totalCol, _ := excelize.ColumnNumberToName(len(dates) + 3)
	f.SetCellValue(sheet, totalCol+"1", "Percent")

	for rowIdx, student := range students {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), student.RollNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), student.Name)

		attended := 0
		for i, d := range dates {
			mark := "A"
			if statusByCell[cellKey(student.ID, d)] == model.Present {
				mark = "P"
				attended++
			}
			col, _ := excelize.ColumnNumberToName(i + 3)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), mark)
		}
		if len(dates) > 0 {
			pct := float64(attended) / float64(len(dates)) * 100
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", totalCol, row), fmt.Sprintf("%.1f%%", pct))
		}
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx",
		strings.ReplaceAll(subject.Code, " ", "_"), time.Now().Format("20060102"))
	return f, filename, nil
}

// RiskReport 风险报表：每个学生一行，出勤率/成绩/档位/概率/原因
func (s *ReportService) RiskReport(subjectID uint) (*excelize.File, string, error) {
	subject, err := s.SubjectService.GetByID(subjectID)
	if err != nil {
		return nil, "", err
	}

	cohort, forecast, err := s.Analytics.SubjectForecast(subjectID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Student", "Attendance %", "Marks %", "Risk Level", "Probability", "Reasons"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}

	for i, cs := range cohort {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cs.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cs.Assessment.AttendancePercentage)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cs.Assessment.MarksPercentage)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(cs.Assessment.RiskLevel))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), cs.Assessment.Probability)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), strings.Join(cs.Assessment.RiskReasons, "; "))
	}

	// 预测摘要放在名单下方
	summaryRow := len(cohort) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Current pass rate")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), forecast.CurrentPassRate)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Predicted pass rate")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), forecast.PredictedPassRate)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "At-risk students")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+2), forecast.AtRiskCount)

	filename := fmt.Sprintf("risk_%s_%s.xlsx",
		strings.ReplaceAll(subject.Code, " ", "_"), time.Now().Format("20060102"))
	return f, filename, nil
}

func cellKey(studentID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", studentID, date.Format("2006-01-02"))
}
