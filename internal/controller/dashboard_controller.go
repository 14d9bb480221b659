package controller

import (
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Admin godoc
// @Summary 管理端首页概览
// @Description 各角色账号数、系部/科目数、待审批数和最近操作
// @Tags 仪表盘
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AdminDashboard} "成功"
// @Router /api/admin/dashboard [get]
func (c *DashboardController) Admin(ctx *gin.Context) {
	dash, err := c.DashboardService.Admin()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// Teacher godoc
// @Summary 教师首页概览
// @Description 按任教科目汇总学生数、点名次数和班级均分
// @Tags 仪表盘
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.TeacherSubjectCard} "成功"
// @Router /api/teacher/dashboard [get]
func (c *DashboardController) Teacher(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	cards, err := c.DashboardService.Teacher(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}
