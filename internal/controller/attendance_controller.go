package controller

import (
	"errors"
	"time"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
	UserService       *service.UserService
}

func NewAttendanceController(attendanceService *service.AttendanceService, userService *service.UserService) *AttendanceController {
	return &AttendanceController{
		AttendanceService: attendanceService,
		UserService:       userService,
	}
}

// RecordSessionRequest 一次整班点名请求
// swagger:model RecordSessionRequest
type RecordSessionRequest struct {
	SubjectID uint                   `json:"subjectId" binding:"required"`
	Date      string                 `json:"date" binding:"required"` // 格式 2006-01-02
	Entries   []service.SessionEntry `json:"entries" binding:"required,min=1"`
}

// RecordSession godoc
// @Summary 记录一次点名
// @Description 教师对自己任教的科目整班点名，同一科目同一天只能点名一次，记录不可修改
// @Tags 出勤
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body RecordSessionRequest true "点名数据"
// @Success 201 {object} util.Response{data=object} "记录成功"
// @Failure 403 {object} util.Response "不是该科目的任课教师"
// @Failure 409 {object} util.Response "当天已点名"
// @Router /api/teacher/attendance [post]
func (c *AttendanceController) RecordSession(ctx *gin.Context) {
	var req RecordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		util.BadRequest(ctx, "日期格式应为 2006-01-02")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	count, err := c.AttendanceService.RecordSession(claims.UserID, isAdmin, req.SubjectID, date, req.Entries)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotSubjectTeacher):
			util.Error(ctx, 403, "不是该科目的任课教师")
		case errors.Is(err, util.ErrDuplicateAttendance):
			util.Error(ctx, 409, "该科目当天已点名")
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"recorded": count})
}

// SubjectRegister godoc
// @Summary 科目出勤登记表
// @Description 返回一门科目的全部出勤记录和点名日期
// @Tags 出勤
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/teacher/subjects/{id}/attendance [get]
func (c *AttendanceController) SubjectRegister(ctx *gin.Context) {
	records, dates, err := c.AttendanceService.SubjectRegister(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"records": records, "dates": dates})
}

// StudentHistory godoc
// @Summary 学生出勤记录
// @Description 管理员/教师按学生ID查询出勤记录
// @Tags 出勤
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord} "成功"
// @Router /api/students/{id}/attendance [get]
func (c *AttendanceController) StudentHistory(ctx *gin.Context) {
	records, err := c.AttendanceService.StudentHistory(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// MyHistory godoc
// @Summary 我的出勤记录
// @Description 学生查看自己的出勤；家长查看关联学生的出勤
// @Tags 出勤
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord} "成功"
// @Failure 404 {object} util.Response "家长账号未关联学生"
// @Router /api/my/attendance [get]
func (c *AttendanceController) MyHistory(ctx *gin.Context) {
	studentID, ok := resolveStudentID(ctx, c.UserService)
	if !ok {
		return
	}

	records, err := c.AttendanceService.StudentHistory(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// resolveStudentID 学生取自己的ID，家长取关联学生的ID
func resolveStudentID(ctx *gin.Context, users *service.UserService) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims.Role != model.Parent {
		return claims.UserID, true
	}

	student, err := users.LinkedStudent(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoLinkedStudent) {
			util.Error(ctx, 404, "家长账号未关联学生")
		} else {
			util.LogInternalError(ctx, err)
		}
		return 0, false
	}
	return student.ID, true
}
