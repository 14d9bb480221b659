package controller

import (
	"errors"

	"school_edu_backend/internal/analytics"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// Get godoc
// @Summary 我的分析参数
// @Description 教师查看自己的阈值/权重设置，未设置时返回全局默认值
// @Tags 教师设置
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.TeacherSettings} "成功"
// @Router /api/teacher/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	settings, err := c.SettingsService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// UpdateSettingsRequest 分析参数更新请求
// swagger:model UpdateSettingsRequest
type UpdateSettingsRequest struct {
	MinAttendance    float64 `json:"minAttendance" binding:"required"`
	PassMarks        float64 `json:"passMarks" binding:"required"`
	ModerateBand     float64 `json:"moderateBand" binding:"required"`
	MaxTest1         float64 `json:"maxTest1" binding:"required"`
	MaxTest2         float64 `json:"maxTest2" binding:"required"`
	MaxAssignment    float64 `json:"maxAssignment" binding:"required"`
	Test1Weight      float64 `json:"test1Weight" binding:"required"`
	Test2Weight      float64 `json:"test2Weight" binding:"required"`
	AssignmentWeight float64 `json:"assignmentWeight" binding:"required"`
}

// Update godoc
// @Summary 更新我的分析参数
// @Description 整体校验（权重和为1、阈值范围）通过后落库并清空分析缓存
// @Tags 教师设置
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateSettingsRequest true "参数"
// @Success 200 {object} util.Response{data=model.TeacherSettings} "成功"
// @Failure 400 {object} util.Response "参数校验不通过"
// @Router /api/teacher/settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	settings := &model.TeacherSettings{
		TeacherID:        claims.UserID,
		MinAttendance:    req.MinAttendance,
		PassMarks:        req.PassMarks,
		ModerateBand:     req.ModerateBand,
		MaxTest1:         req.MaxTest1,
		MaxTest2:         req.MaxTest2,
		MaxAssignment:    req.MaxAssignment,
		Test1Weight:      req.Test1Weight,
		Test2Weight:      req.Test2Weight,
		AssignmentWeight: req.AssignmentWeight,
	}

	if err := c.SettingsService.Update(settings); err != nil {
		switch {
		case errors.Is(err, analytics.ErrWeightSum),
			errors.Is(err, analytics.ErrWeightRange),
			errors.Is(err, analytics.ErrThreshold),
			errors.Is(err, analytics.ErrComponentMax):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, settings)
}
