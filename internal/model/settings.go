package model

// TeacherSettings 教师级的分析参数覆盖，未设置时回落到全局配置。
// 权重之和、阈值范围在更新入口校验，引擎本身不再容错。
// swagger:model TeacherSettings
type TeacherSettings struct {
	BaseModel
	TeacherID        uint    `gorm:"uniqueIndex;not null" json:"teacherId"`
	MinAttendance    float64 `gorm:"default:75" json:"minAttendance"`
	PassMarks        float64 `gorm:"default:20" json:"passMarks"`
	ModerateBand     float64 `gorm:"default:10" json:"moderateBand"`
	MaxTest1         float64 `gorm:"default:30" json:"maxTest1"`
	MaxTest2         float64 `gorm:"default:30" json:"maxTest2"`
	MaxAssignment    float64 `gorm:"default:40" json:"maxAssignment"`
	Test1Weight      float64 `gorm:"default:0.3" json:"test1Weight"`
	Test2Weight      float64 `gorm:"default:0.3" json:"test2Weight"`
	AssignmentWeight float64 `gorm:"default:0.4" json:"assignmentWeight"`
}

func (TeacherSettings) TableName() string {
	return "teacher_settings"
}
