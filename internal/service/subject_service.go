package service

import (
	"errors"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"

	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
	Activity    *ActivityService
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, activity *ActivityService) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo, Activity: activity}
}

func (s *SubjectService) Create(actorID uint, subject *model.Subject) error {
	if err := s.SubjectRepo.Create(subject); err != nil {
		return err
	}
	s.Activity.Record(actorID, "subject.create", subject.Code, subject.Name)
	return nil
}

func (s *SubjectService) GetByID(id uint) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	return subject, err
}

func (s *SubjectService) List(departmentID uint, search string, page, limit int) ([]model.Subject, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.SubjectRepo.List(departmentID, search, page, limit)
}

func (s *SubjectService) ListByTeacher(teacherID uint) ([]model.Subject, error) {
	return s.SubjectRepo.FindByTeacher(teacherID)
}

func (s *SubjectService) Update(actorID uint, subject *model.Subject) error {
	if err := s.SubjectRepo.Update(subject); err != nil {
		return err
	}
	s.Activity.Record(actorID, "subject.update", subject.Code, subject.Name)
	return nil
}

func (s *SubjectService) Delete(actorID, id uint) error {
	subject, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.SubjectRepo.Delete(id); err != nil {
		return err
	}
	s.Activity.Record(actorID, "subject.delete", subject.Code, subject.Name)
	return nil
}

// AssertTeaches 校验教师是否任教该科目，管理员视角的调用传 isAdmin=true 跳过
func (s *SubjectService) AssertTeaches(teacherID, subjectID uint, isAdmin bool) (*model.Subject, error) {
	subject, err := s.GetByID(subjectID)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return subject, nil
	}
	if subject.TeacherID == nil || *subject.TeacherID != teacherID {
		return nil, util.ErrNotSubjectTeacher
	}
	return subject, nil
}
