package controller

import (
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	DepartmentService *service.DepartmentService
}

func NewDepartmentController(departmentService *service.DepartmentService) *DepartmentController {
	return &DepartmentController{DepartmentService: departmentService}
}

// DepartmentRequest 系部创建/更新请求
// swagger:model DepartmentRequest
type DepartmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Code  string `json:"code" binding:"required"`
	HODID *uint  `json:"hodId"`
}

// List godoc
// @Summary 系部列表
// @Tags 系部管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Department} "成功"
// @Router /api/departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	depts, err := c.DepartmentService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, depts)
}

// Get godoc
// @Summary 系部详情
// @Tags 系部管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "系部ID"
// @Success 200 {object} util.Response{data=model.Department} "成功"
// @Failure 404 {object} util.Response "系部不存在"
// @Router /api/departments/{id} [get]
func (c *DepartmentController) Get(ctx *gin.Context) {
	dept, err := c.DepartmentService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, dept)
}

// Create godoc
// @Summary 创建系部
// @Tags 系部管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body DepartmentRequest true "系部信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Router /api/admin/departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	dept := &model.Department{Name: req.Name, Code: req.Code, HODID: req.HODID}
	if err := c.DepartmentService.Create(claims.UserID, dept); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": dept.ID})
}

// Update godoc
// @Summary 更新系部
// @Tags 系部管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "系部ID"
// @Param   body body DepartmentRequest true "系部信息"
// @Success 200 {object} util.Response{data=model.Department} "成功"
// @Failure 404 {object} util.Response "系部不存在"
// @Router /api/admin/departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	var req DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dept, err := c.DepartmentService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	dept.Name = req.Name
	dept.Code = req.Code
	dept.HODID = req.HODID

	claims := util.GetUserFromContext(ctx)
	if err := c.DepartmentService.Update(claims.UserID, dept); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dept)
}

// Delete godoc
// @Summary 删除系部
// @Tags 系部管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "系部ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/admin/departments/{id} [delete]
func (c *DepartmentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.DepartmentService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
