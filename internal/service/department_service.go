package service

import (
	"errors"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"

	"gorm.io/gorm"
)

type DepartmentService struct {
	DeptRepo *repository.DepartmentRepository
	Activity *ActivityService
}

func NewDepartmentService(deptRepo *repository.DepartmentRepository, activity *ActivityService) *DepartmentService {
	return &DepartmentService{DeptRepo: deptRepo, Activity: activity}
}

func (s *DepartmentService) Create(actorID uint, dept *model.Department) error {
	if err := s.DeptRepo.Create(dept); err != nil {
		return err
	}
	s.Activity.Record(actorID, "department.create", dept.Code, dept.Name)
	return nil
}

func (s *DepartmentService) GetByID(id uint) (*model.Department, error) {
	dept, err := s.DeptRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDepartmentNotFound
	}
	return dept, err
}

// ByHOD 系主任登录后定位自己管理的系部
func (s *DepartmentService) ByHOD(hodID uint) (*model.Department, error) {
	dept, err := s.DeptRepo.FindByHOD(hodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDepartmentNotFound
	}
	return dept, err
}

func (s *DepartmentService) List() ([]model.Department, error) {
	return s.DeptRepo.List()
}

func (s *DepartmentService) Update(actorID uint, dept *model.Department) error {
	if err := s.DeptRepo.Update(dept); err != nil {
		return err
	}
	s.Activity.Record(actorID, "department.update", dept.Code, dept.Name)
	return nil
}

func (s *DepartmentService) Delete(actorID, id uint) error {
	dept, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.DeptRepo.Delete(id); err != nil {
		return err
	}
	s.Activity.Record(actorID, "department.delete", dept.Code, dept.Name)
	return nil
}
