package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MarkRepository struct {
	DB *gorm.DB
}

func NewMarkRepository(db *gorm.DB) *MarkRepository {
	return &MarkRepository{DB: db}
}

// Upsert 同一学生同一科目重复登分按更新处理
func (r *MarkRepository) Upsert(entry *model.MarkEntry) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"test1", "test2", "assignment", "entered_by", "updated_at"}),
	}).Create(entry).Error
}

func (r *MarkRepository) FindByStudent(studentID uint) ([]model.MarkEntry, error) {
	var entries []model.MarkEntry
	err := r.DB.Where("student_id = ?", studentID).Find(&entries).Error
	return entries, err
}

func (r *MarkRepository) FindByStudentAndSubject(studentID, subjectID uint) (*model.MarkEntry, error) {
	var entry model.MarkEntry
	err := r.DB.Where("student_id = ? AND subject_id = ?", studentID, subjectID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MarkRepository) FindBySubject(subjectID uint) ([]model.MarkEntry, error) {
	var entries []model.MarkEntry
	err := r.DB.Where("subject_id = ?", subjectID).Order("student_id asc").Find(&entries).Error
	return entries, err
}
