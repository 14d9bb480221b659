package service

import (
	"context"
	"fmt"

	"school_edu_backend/internal/analytics"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
)

type MarksService struct {
	MarkRepo       *repository.MarkRepository
	SubjectService *SubjectService
	Settings       *SettingsService
	Activity       *ActivityService
}

func NewMarksService(
	markRepo *repository.MarkRepository,
	subjectService *SubjectService,
	settings *SettingsService,
	activity *ActivityService,
) *MarksService {
	return &MarksService{
		MarkRepo:       markRepo,
		SubjectService: subjectService,
		Settings:       settings,
		Activity:       activity,
	}
}

// EnterMarks 录入/修改一个学生的平时成绩。
// 超出配置满分的原始分在这里拒绝，而不是等引擎悄悄截断。
func (s *MarksService) EnterMarks(teacherID uint, isAdmin bool, entry *model.MarkEntry) error {
	subject, err := s.SubjectService.AssertTeaches(teacherID, entry.SubjectID, isAdmin)
	if err != nil {
		return err
	}

	cfg := s.Settings.Resolve(subject.TeacherID)
	if entry.Test1 < 0 || entry.Test1 > cfg.MaxTest1 ||
		entry.Test2 < 0 || entry.Test2 > cfg.MaxTest2 ||
		entry.Assignment < 0 || entry.Assignment > cfg.MaxAssignment {
		return util.ErrMarksOutOfRange
	}

	entry.EnteredBy = teacherID
	if err := s.MarkRepo.Upsert(entry); err != nil {
		return err
	}

	s.Settings.InvalidateAnalyticsCache(context.Background())

	s.Activity.Record(teacherID, "marks.enter", subject.Code,
		fmt.Sprintf("student %d: %.1f/%.1f/%.1f", entry.StudentID, entry.Test1, entry.Test2, entry.Assignment))
	return nil
}

// SubjectMarksRow 成绩单一行：原始分+加权汇总
type SubjectMarksRow struct {
	StudentID uint               `json:"studentId"`
	Summary   model.MarksSummary `json:"summary"`
}

// SubjectMarks 科目成绩单与班级均分
func (s *MarksService) SubjectMarks(subjectID uint) ([]SubjectMarksRow, float64, error) {
	subject, err := s.SubjectService.GetByID(subjectID)
	if err != nil {
		return nil, 0, err
	}
	cfg := s.Settings.Resolve(subject.TeacherID)

	entries, err := s.MarkRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]SubjectMarksRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, SubjectMarksRow{
			StudentID: e.StudentID,
			Summary:   analytics.WeightedMarks(e, cfg),
		})
	}

	return rows, analytics.ClassAverage(entries, cfg), nil
}

func (s *MarksService) StudentMarks(studentID uint) ([]model.MarkEntry, error) {
	return s.MarkRepo.FindByStudent(studentID)
}
