package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Code         string `gorm:"size:20;unique;not null" json:"code"`
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
	TeacherID    *uint  `gorm:"index" json:"teacherId"` // 任课教师
	Semester     int    `gorm:"default:1" json:"semester"`
}

func (Subject) TableName() string {
	return "subjects"
}
