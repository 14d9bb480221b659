package model

import "time"

type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// AttendanceRecord 一次课堂点名的单条记录，录入后不可修改。
// 同一学生同一科目同一天只允许一条。
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	BaseModel
	StudentID  uint             `gorm:"index:idx_att_unique,unique;not null" json:"studentId"`
	SubjectID  uint             `gorm:"index:idx_att_unique,unique;not null" json:"subjectId"`
	Date       time.Time        `gorm:"index:idx_att_unique,unique;type:date;not null" json:"date"`
	Status     AttendanceStatus `gorm:"type:enum('present','absent');default:'absent'" json:"status"`
	RecordedBy uint             `gorm:"index" json:"recordedBy"` // 录入教师
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
