package model

// MarkEntry 一个学生一门科目的平时成绩（两次测验+一次作业）。
// 各分项满分与加权比例见 TeacherSettings / 全局配置。
// swagger:model MarkEntry
type MarkEntry struct {
	BaseModel
	StudentID  uint    `gorm:"index:idx_mark_unique,unique;not null" json:"studentId"`
	SubjectID  uint    `gorm:"index:idx_mark_unique,unique;not null" json:"subjectId"`
	Test1      float64 `gorm:"default:0" json:"test1"`
	Test2      float64 `gorm:"default:0" json:"test2"`
	Assignment float64 `gorm:"default:0" json:"assignment"`
	EnteredBy  uint    `gorm:"index" json:"enteredBy"`
}

func (MarkEntry) TableName() string {
	return "mark_entries"
}
