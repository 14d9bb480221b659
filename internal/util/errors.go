package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrAccountPending      = errors.New("账号待管理员审批")
	ErrAccountRejected     = errors.New("账号已被拒绝")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrNotSubjectTeacher   = errors.New("not the teacher of this subject")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this date")
	ErrMarksOutOfRange     = errors.New("marks exceed configured maximum")
	ErrNoLinkedStudent     = errors.New("no student linked to this parent account")
)
