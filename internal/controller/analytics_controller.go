package controller

import (
	"errors"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService  *service.AnalyticsService
	SubjectService    *service.SubjectService
	DepartmentService *service.DepartmentService
	UserService       *service.UserService
}

func NewAnalyticsController(
	analyticsService *service.AnalyticsService,
	subjectService *service.SubjectService,
	departmentService *service.DepartmentService,
	userService *service.UserService,
) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService:  analyticsService,
		SubjectService:    subjectService,
		DepartmentService: departmentService,
		UserService:       userService,
	}
}

// StudentAnalytics godoc
// @Summary 学生风险分析
// @Description 按学生ID返回出勤/成绩/趋势/风险评估的完整分析视图
// @Tags 分析
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=model.StudentAnalytics} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/students/{id}/analytics [get]
func (c *AnalyticsController) StudentAnalytics(ctx *gin.Context) {
	result, err := c.AnalyticsService.StudentAnalytics(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// MyAnalytics godoc
// @Summary 我的风险分析
// @Description 学生查看自己的分析；家长查看关联学生的分析
// @Tags 分析
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudentAnalytics} "成功"
// @Failure 404 {object} util.Response "家长账号未关联学生"
// @Router /api/my/analytics [get]
func (c *AnalyticsController) MyAnalytics(ctx *gin.Context) {
	studentID, ok := resolveStudentID(ctx, c.UserService)
	if !ok {
		return
	}

	result, err := c.AnalyticsService.StudentAnalytics(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// SubjectForecast godoc
// @Summary 科目预测
// @Description 返回一门科目全班的风险评估明细和通过率预测
// @Tags 分析
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "不是该科目的任课教师"
// @Router /api/teacher/subjects/{id}/forecast [get]
func (c *AnalyticsController) SubjectForecast(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("id"))

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin || claims.Role == model.HOD
	if _, err := c.SubjectService.AssertTeaches(claims.UserID, subjectID, isAdmin); err != nil {
		switch {
		case errors.Is(err, util.ErrNotSubjectTeacher):
			util.Error(ctx, 403, "不是该科目的任课教师")
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	students, forecast, err := c.AnalyticsService.SubjectForecast(subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"students": students, "forecast": forecast})
}

// DepartmentOverview godoc
// @Summary 系部分析总览
// @Description 管理员按系部ID查看各科目出勤均值和高风险学生名单
// @Tags 分析
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "系部ID"
// @Success 200 {object} util.Response{data=model.DepartmentOverview} "成功"
// @Failure 404 {object} util.Response "系部不存在"
// @Router /api/departments/{id}/analytics [get]
func (c *AnalyticsController) DepartmentOverview(ctx *gin.Context) {
	overview, err := c.AnalyticsService.DepartmentOverview(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, overview)
}

// MyDepartmentOverview godoc
// @Summary 我的系部总览
// @Description 系主任查看自己管理系部的分析总览
// @Tags 分析
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.DepartmentOverview} "成功"
// @Failure 404 {object} util.Response "该账号不是任何系部的系主任"
// @Router /api/hod/overview [get]
func (c *AnalyticsController) MyDepartmentOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	dept, err := c.DepartmentService.ByHOD(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.Error(ctx, 404, "该账号不是任何系部的系主任")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	overview, err := c.AnalyticsService.DepartmentOverview(dept.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
