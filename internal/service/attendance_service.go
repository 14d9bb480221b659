package service

import (
	"context"
	"fmt"
	"time"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	SubjectService *SubjectService
	Settings       *SettingsService
	Activity       *ActivityService
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	subjectService *SubjectService,
	settings *SettingsService,
	activity *ActivityService,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		SubjectService: subjectService,
		Settings:       settings,
		Activity:       activity,
	}
}

// SessionEntry 一次点名中单个学生的状态
type SessionEntry struct {
	StudentID uint                   `json:"studentId" binding:"required"`
	Status    model.AttendanceStatus `json:"status"`
}

// RecordSession 教师对一门课的一次整班点名。
// 记录一经写入不可修改；同一科目同一天只允许点名一次。
// status 缺失或非法值照收但按缺勤计，与引擎的容错口径一致。
func (s *AttendanceService) RecordSession(teacherID uint, isAdmin bool, subjectID uint, date time.Time, entries []SessionEntry) (int, error) {
	subject, err := s.SubjectService.AssertTeaches(teacherID, subjectID, isAdmin)
	if err != nil {
		return 0, err
	}

	day := date.Truncate(24 * time.Hour)
	exists, err := s.AttendanceRepo.ExistsForDate(subjectID, day)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, util.ErrDuplicateAttendance
	}

	records := make([]model.AttendanceRecord, 0, len(entries))
	for _, e := range entries {
		status := e.Status
		if status != model.Present {
			status = model.Absent
		}
		records = append(records, model.AttendanceRecord{
			StudentID:  e.StudentID,
			SubjectID:  subjectID,
			Date:       day,
			Status:     status,
			RecordedBy: teacherID,
		})
	}

	if err := s.AttendanceRepo.CreateBatch(records); err != nil {
		return 0, err
	}

	// 新数据让已缓存的评估结果失效
	s.Settings.InvalidateAnalyticsCache(context.Background())

	s.Activity.Record(teacherID, "attendance.record", subject.Code,
		fmt.Sprintf("%s: %d students", day.Format("2006-01-02"), len(records)))
	return len(records), nil
}

func (s *AttendanceService) StudentHistory(studentID uint) ([]model.AttendanceRecord, error) {
	return s.AttendanceRepo.FindByStudent(studentID)
}

func (s *AttendanceService) StudentSubjectHistory(studentID, subjectID uint) ([]model.AttendanceRecord, error) {
	return s.AttendanceRepo.FindByStudentAndSubject(studentID, subjectID)
}

func (s *AttendanceService) SubjectRegister(subjectID uint) ([]model.AttendanceRecord, []time.Time, error) {
	records, err := s.AttendanceRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, nil, err
	}
	dates, err := s.AttendanceRepo.SessionDates(subjectID)
	if err != nil {
		return nil, nil, err
	}
	return records, dates, nil
}
