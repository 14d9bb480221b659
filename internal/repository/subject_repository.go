package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) List(departmentID uint, search string, page, limit int) ([]model.Subject, int64, error) {
	query := r.DB.Model(&model.Subject{})
	if departmentID != 0 {
		query = query.Where("department_id = ?", departmentID)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subjects []model.Subject
	offset := (page - 1) * limit
	err := query.Order("code asc").Offset(offset).Limit(limit).Find(&subjects).Error
	return subjects, total, err
}

func (r *SubjectRepository) FindByTeacher(teacherID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("teacher_id = ?", teacherID).Order("code asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindByDepartment(departmentID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("department_id = ?", departmentID).Order("code asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Subject{}).Count(&count).Error
	return count, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

func (r *SubjectRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Subject{}, id).Error
}
