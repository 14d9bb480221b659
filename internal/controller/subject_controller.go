package controller

import (
	"strconv"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
	UserService    *service.UserService
}

func NewSubjectController(subjectService *service.SubjectService, userService *service.UserService) *SubjectController {
	return &SubjectController{
		SubjectService: subjectService,
		UserService:    userService,
	}
}

// SubjectRequest 科目创建/更新请求
// swagger:model SubjectRequest
type SubjectRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	DepartmentID uint   `json:"departmentId" binding:"required"`
	TeacherID    *uint  `json:"teacherId"`
	Semester     int    `json:"semester"`
}

// List godoc
// @Summary 科目列表
// @Tags 科目管理
// @Produce  json
// @Security BearerAuth
// @Param   departmentId query int false "系部过滤"
// @Param   search query string false "搜索关键词"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/subjects [get]
func (c *SubjectController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	departmentID, _ := strconv.ParseUint(ctx.Query("departmentId"), 10, 64)

	subjects, total, err := c.SubjectService.List(uint(departmentID), ctx.Query("search"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"subjects": subjects,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// Get godoc
// @Summary 科目详情
// @Tags 科目管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response{data=model.Subject} "成功"
// @Failure 404 {object} util.Response "科目不存在"
// @Router /api/subjects/{id} [get]
func (c *SubjectController) Get(ctx *gin.Context) {
	subject, err := c.SubjectService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, subject)
}

// Mine godoc
// @Summary 我教的科目
// @Description 教师查看自己任教的科目列表
// @Tags 科目管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Subject} "成功"
// @Router /api/teacher/subjects [get]
func (c *SubjectController) Mine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	subjects, err := c.SubjectService.ListByTeacher(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// Students godoc
// @Summary 科目学生名单
// @Description 按科目所在系部返回选课学生
// @Tags 科目管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response{data=[]model.User} "成功"
// @Failure 404 {object} util.Response "科目不存在"
// @Router /api/subjects/{id}/students [get]
func (c *SubjectController) Students(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("id"))
	if _, err := c.SubjectService.GetByID(subjectID); err != nil {
		util.NotFound(ctx)
		return
	}

	students, err := c.UserService.UserRepo.FindStudentsBySubject(subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// Create godoc
// @Summary 创建科目
// @Tags 科目管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SubjectRequest true "科目信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Router /api/admin/subjects [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	subject := &model.Subject{
		Name:         req.Name,
		Code:         req.Code,
		DepartmentID: req.DepartmentID,
		TeacherID:    req.TeacherID,
		Semester:     req.Semester,
	}
	if err := c.SubjectService.Create(claims.UserID, subject); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": subject.ID})
}

// Update godoc
// @Summary 更新科目
// @Tags 科目管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Param   body body SubjectRequest true "科目信息"
// @Success 200 {object} util.Response{data=model.Subject} "成功"
// @Failure 404 {object} util.Response "科目不存在"
// @Router /api/admin/subjects/{id} [put]
func (c *SubjectController) Update(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	subject.Name = req.Name
	subject.Code = req.Code
	subject.DepartmentID = req.DepartmentID
	subject.TeacherID = req.TeacherID
	if req.Semester > 0 {
		subject.Semester = req.Semester
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.SubjectService.Update(claims.UserID, subject); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// Delete godoc
// @Summary 删除科目
// @Tags 科目管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/admin/subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.SubjectService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
