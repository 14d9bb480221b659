package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateStatus(userID uint, status model.AccountStatus) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("status", status).Error
}

func (r *UserRepository) Delete(userID uint) error {
	return r.DB.Delete(&model.User{}, userID).Error
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByStatus(status model.AccountStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// List 管理端分页列表，支持按角色过滤和按姓名/邮箱/学号模糊搜索
func (r *UserRepository) List(role model.UserRole, search string, page, limit int) ([]model.User, int64, error) {
	query := r.DB.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR roll_no LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) FindStudentsByDepartment(departmentID uint) ([]model.User, error) {
	var students []model.User
	err := r.DB.Where("role = ? AND department_id = ? AND status = ?",
		model.Student, departmentID, model.StatusApproved).Find(&students).Error
	return students, err
}

func (r *UserRepository) FindStudentsBySubject(subjectID uint) ([]model.User, error) {
	var students []model.User
	err := r.DB.Joins("JOIN subjects ON subjects.department_id = users.department_id").
		Where("subjects.id = ? AND users.role = ? AND users.status = ?",
			subjectID, model.Student, model.StatusApproved).
		Find(&students).Error
	return students, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("last_seen", gorm.Expr("CURRENT_TIMESTAMP(3)")).Error
}
