package model

// ActivityLog 管理端操作流水（录入出勤、登分、审批账号等）
// swagger:model ActivityLog
type ActivityLog struct {
	UUIDBase
	ActorID uint   `gorm:"index;not null" json:"actorId"`
	Action  string `gorm:"size:50;not null" json:"action"` // attendance.record / marks.enter / user.approve ...
	Target  string `gorm:"size:100" json:"target"`
	Detail  string `gorm:"size:500" json:"detail"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
