package model

// swagger:model Department
type Department struct {
	BaseModel
	Name  string `gorm:"size:100;unique;not null" json:"name"`
	Code  string `gorm:"size:20;unique;not null" json:"code"`
	HODID *uint  `gorm:"index" json:"hodId"` // 系主任
}

func (Department) TableName() string {
	return "departments"
}
