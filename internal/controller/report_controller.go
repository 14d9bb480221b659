package controller

import (
	"errors"
	"fmt"
	"net/http"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ReportController struct {
	ReportService  *service.ReportService
	SubjectService *service.SubjectService
}

func NewReportController(reportService *service.ReportService, subjectService *service.SubjectService) *ReportController {
	return &ReportController{
		ReportService:  reportService,
		SubjectService: subjectService,
	}
}

// AttendanceReport godoc
// @Summary 导出出勤登记表
// @Description 生成一门科目的出勤登记 xlsx（按日期展开的 P/A 矩阵）
// @Tags 报表
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {file} binary "xlsx 文件"
// @Failure 403 {object} util.Response "不是该科目的任课教师"
// @Router /api/teacher/subjects/{id}/reports/attendance [get]
func (c *ReportController) AttendanceReport(ctx *gin.Context) {
	subjectID, ok := c.authorize(ctx)
	if !ok {
		return
	}

	file, filename, err := c.ReportService.AttendanceRegister(subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.send(ctx, file, filename)
}

// RiskReport godoc
// @Summary 导出风险报表
// @Description 生成一门科目的学生风险评估 xlsx，末尾附全班预测汇总
// @Tags 报表
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param   id path int true "科目ID"
// @Success 200 {file} binary "xlsx 文件"
// @Failure 403 {object} util.Response "不是该科目的任课教师"
// @Router /api/teacher/subjects/{id}/reports/risk [get]
func (c *ReportController) RiskReport(ctx *gin.Context) {
	subjectID, ok := c.authorize(ctx)
	if !ok {
		return
	}

	file, filename, err := c.ReportService.RiskReport(subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.send(ctx, file, filename)
}

func (c *ReportController) authorize(ctx *gin.Context) (uint, bool) {
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
		return 0, false
	}
	return subjectID, true
}

func (c *ReportController) send(ctx *gin.Context, file *excelize.File, filename string) {
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := file.Write(ctx.Writer); err != nil {
		ctx.Status(http.StatusInternalServerError)
	}
}
