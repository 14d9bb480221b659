package controller

import (
	"errors"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarksController struct {
	MarksService *service.MarksService
	UserService  *service.UserService
}

func NewMarksController(marksService *service.MarksService, userService *service.UserService) *MarksController {
	return &MarksController{
		MarksService: marksService,
		UserService:  userService,
	}
}

// EnterMarksRequest 录入/更新成绩请求
// swagger:model EnterMarksRequest
type EnterMarksRequest struct {
	StudentID  uint    `json:"studentId" binding:"required"`
	SubjectID  uint    `json:"subjectId" binding:"required"`
	Test1      float64 `json:"test1" binding:"min=0"`
	Test2      float64 `json:"test2" binding:"min=0"`
	Assignment float64 `json:"assignment" binding:"min=0"`
}

// Enter godoc
// @Summary 录入成绩
// @Description 教师为自己任教科目的学生录入成绩，重复录入按覆盖处理
// @Tags 成绩
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body EnterMarksRequest true "成绩数据"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "分数超出配置上限"
// @Failure 403 {object} util.Response "不是该科目的任课教师"
// @Router /api/teacher/marks [post]
func (c *MarksController) Enter(ctx *gin.Context) {
	var req EnterMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	entry := &model.MarkEntry{
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		Test1:      req.Test1,
		Test2:      req.Test2,
		Assignment: req.Assignment,
	}

	if err := c.MarksService.EnterMarks(claims.UserID, isAdmin, entry); err != nil {
		switch {
		case errors.Is(err, util.ErrMarksOutOfRange):
			util.BadRequest(ctx, "分数超出配置上限")
		case errors.Is(err, util.ErrNotSubjectTeacher):
			util.Error(ctx, 403, "不是该科目的任课教师")
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, entry)
}

// SubjectMarks godoc
// @Summary 科目成绩单
// @Description 返回一门科目的全部成绩行及班级加权平均分
// @Tags 成绩
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/teacher/subjects/{id}/marks [get]
func (c *MarksController) SubjectMarks(ctx *gin.Context) {
	rows, average, err := c.MarksService.SubjectMarks(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"rows": rows, "classAverage": average})
}

// StudentMarks godoc
// @Summary 学生成绩
// @Description 管理员/教师按学生ID查询成绩
// @Tags 成绩
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=[]model.MarkEntry} "成功"
// @Router /api/students/{id}/marks [get]
func (c *MarksController) StudentMarks(ctx *gin.Context) {
	entries, err := c.MarksService.StudentMarks(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// MyMarks godoc
// @Summary 我的成绩
// @Description 学生查看自己的成绩；家长查看关联学生的成绩
// @Tags 成绩
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.MarkEntry} "成功"
// @Failure 404 {object} util.Response "家长账号未关联学生"
// @Router /api/my/marks [get]
func (c *MarksController) MyMarks(ctx *gin.Context) {
	studentID, ok := resolveStudentID(ctx, c.UserService)
	if !ok {
		return
	}

	entries, err := c.MarksService.StudentMarks(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
