package service

import (
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	DepartmentRepo *repository.DepartmentRepository
	SubjectRepo    *repository.SubjectRepository
	AttendanceRepo *repository.AttendanceRepository
	ActivityRepo   *repository.ActivityRepository
	MarksService   *MarksService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	departmentRepo *repository.DepartmentRepository,
	subjectRepo *repository.SubjectRepository,
	attendanceRepo *repository.AttendanceRepository,
	activityRepo *repository.ActivityRepository,
	marksService *MarksService,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		DepartmentRepo: departmentRepo,
		SubjectRepo:    subjectRepo,
		AttendanceRepo: attendanceRepo,
		ActivityRepo:   activityRepo,
		MarksService:   marksService,
	}
}

// AdminDashboard 管理端首页概览
type AdminDashboard struct {
	Students         int64               `json:"students"`
	Teachers         int64               `json:"teachers"`
	Parents          int64               `json:"parents"`
	Departments      int64               `json:"departments"`
	Subjects         int64               `json:"subjects"`
	PendingApprovals int64               `json:"pendingApprovals"`
	RecentActivity   []model.ActivityLog `json:"recentActivity"`
}

func (s *DashboardService) Admin() (*AdminDashboard, error) {
	dash := &AdminDashboard{}

	var err error
	if dash.Students, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if dash.Teachers, err = s.UserRepo.CountByRole(model.Teacher); err != nil {
		return nil, err
	}
	if dash.Parents, err = s.UserRepo.CountByRole(model.Parent); err != nil {
		return nil, err
	}
	if dash.Departments, err = s.DepartmentRepo.Count(); err != nil {
		return nil, err
	}
	if dash.Subjects, err = s.SubjectRepo.Count(); err != nil {
		return nil, err
	}
	if dash.PendingApprovals, err = s.UserRepo.CountByStatus(model.StatusPending); err != nil {
		return nil, err
	}

	activity, _, err := s.ActivityRepo.List("", 1, 10)
	if err != nil {
		return nil, err
	}
	dash.RecentActivity = activity

	return dash, nil
}

// TeacherSubjectCard 教师首页的单科目汇总卡片
type TeacherSubjectCard struct {
	Subject      model.Subject `json:"subject"`
	Students     int           `json:"students"`
	Sessions     int           `json:"sessions"`
	ClassAverage float64       `json:"classAverage"`
}

func (s *DashboardService) Teacher(teacherID uint) ([]TeacherSubjectCard, error) {
	subjects, err := s.SubjectRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	cards := make([]TeacherSubjectCard, 0, len(subjects))
	for _, subject := range subjects {
		students, err := s.UserRepo.FindStudentsBySubject(subject.ID)
		if err != nil {
			return nil, err
		}
		dates, err := s.AttendanceRepo.SessionDates(subject.ID)
		if err != nil {
			return nil, err
		}
		_, average, err := s.MarksService.SubjectMarks(subject.ID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, TeacherSubjectCard{
			Subject:      subject,
			Students:     len(students),
			Sessions:     len(dates),
			ClassAverage: average,
		})
	}
	return cards, nil
}
