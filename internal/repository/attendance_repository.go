package repository

import (
	"time"

	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// CreateBatch 一次点名整班写入，任何一条违反 (student,subject,date) 唯一约束则整批回滚
func (r *AttendanceRepository) CreateBatch(records []model.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}

func (r *AttendanceRepository) FindByStudent(studentID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.Where("student_id = ?", studentID).Order("date asc").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) FindByStudentAndSubject(studentID, subjectID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		Order("date asc").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) FindBySubject(subjectID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.Where("subject_id = ?", subjectID).Order("date asc, student_id asc").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) ExistsForDate(subjectID uint, date time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AttendanceRecord{}).
		Where("subject_id = ? AND date = ?", subjectID, date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

// SessionDates 某科目已点名的日期列表，出勤登记表的列头
func (r *AttendanceRepository) SessionDates(subjectID uint) ([]time.Time, error) {
	var dates []time.Time
	err := r.DB.Model(&model.AttendanceRecord{}).
		Where("subject_id = ?", subjectID).
		Distinct("date").Order("date asc").Pluck("date", &dates).Error
	return dates, err
}
