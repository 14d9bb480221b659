package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) FindByTeacher(teacherID uint) (*model.TeacherSettings, error) {
	var settings model.TeacherSettings
	err := r.DB.Where("teacher_id = ?", teacherID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(settings *model.TeacherSettings) error {
	var existing model.TeacherSettings
	err := r.DB.Where("teacher_id = ?", settings.TeacherID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	return r.DB.Save(settings).Error
}
