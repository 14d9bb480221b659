package model

import (
	"time"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	Teacher UserRole = "teacher"
	Student UserRole = "student"
	Parent  UserRole = "parent"
	HOD     UserRole = "hod"
)

type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)

// swagger:model User
type User struct {
	BaseModel
	Name         string        `gorm:"size:100;not null" json:"name"`
	Email        string        `gorm:"size:100;unique;not null" json:"email"`
	Password     string        `gorm:"size:100;not null" json:"-"`
	Role         UserRole      `gorm:"type:enum('admin','teacher','student','parent','hod');default:'student'" json:"role"`
	Status       AccountStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	DepartmentID *uint         `gorm:"index" json:"departmentId"`
	RollNo       string        `gorm:"size:30" json:"rollNo"`   // 学号，仅学生有
	ChildID      *uint         `gorm:"index" json:"childId"`    // 家长关联的学生
	Avatar       string        `gorm:"size:255" json:"avatar"`
	LastLogin    time.Time     `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time     `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
