package app

import (
	"school_edu_backend/docs"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/middleware"
	"school_edu_backend/internal/model"
	"school_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerCommonRoutes(authGroup, c)
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerHODRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// registerCommonRoutes 所有已登录角色可用
func (a *App) registerCommonRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.POST("/users/avatar", c.user.UploadAvatar)
	rg.GET("/departments", c.department.List)
	rg.GET("/departments/:id", c.department.Get)
	rg.GET("/subjects", c.subject.List)
	rg.GET("/subjects/:id", c.subject.Get)
}

// registerStudentRoutes 学生和家长共用“我的”视图，家长自动映射到关联学生
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	my := rg.Group("/my")
	my.Use(middleware.RoleMiddleware(model.Student, model.Parent))
	{
		my.GET("/attendance", c.attendance.MyHistory)
		my.GET("/marks", c.marks.MyMarks)
		my.GET("/analytics", c.analytics.MyAnalytics)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.GET("/dashboard", c.dashboard.Teacher)
		teacher.GET("/subjects", c.subject.Mine)
		teacher.GET("/settings", c.settings.Get)
		teacher.PUT("/settings", c.settings.Update)

		teacher.POST("/attendance", c.attendance.RecordSession)
		teacher.GET("/subjects/:id/attendance", c.attendance.SubjectRegister)

		teacher.POST("/marks", c.marks.Enter)
		teacher.GET("/subjects/:id/marks", c.marks.SubjectMarks)

		teacher.GET("/subjects/:id/forecast", c.analytics.SubjectForecast)
		teacher.GET("/subjects/:id/reports/attendance", c.report.AttendanceReport)
		teacher.GET("/subjects/:id/reports/risk", c.report.RiskReport)
	}

	// 教师/系主任/管理员都可按学生查明细
	staff := rg.Group("/students")
	staff.Use(middleware.RoleMiddleware(model.Teacher, model.HOD))
	{
		staff.GET("/:id/attendance", c.attendance.StudentHistory)
		staff.GET("/:id/marks", c.marks.StudentMarks)
		staff.GET("/:id/analytics", c.analytics.StudentAnalytics)
	}

	rg.GET("/subjects/:id/students", middleware.RoleMiddleware(model.Teacher, model.HOD), c.subject.Students)
}

func (a *App) registerHODRoutes(rg *gin.RouterGroup, c *controllers) {
	hod := rg.Group("/hod")
	hod.Use(middleware.RoleMiddleware(model.HOD))
	{
		hod.GET("/overview", c.analytics.MyDepartmentOverview)
		hod.GET("/subjects/:id/forecast", c.analytics.SubjectForecast)
		hod.GET("/subjects/:id/reports/attendance", c.report.AttendanceReport)
		hod.GET("/subjects/:id/reports/risk", c.report.RiskReport)
	}

	rg.GET("/departments/:id/analytics", middleware.RoleMiddleware(model.HOD), c.analytics.DepartmentOverview)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.Admin)
		admin.GET("/activity", c.activity.List)

		admin.GET("/users", c.user.List)
		admin.POST("/users", c.user.Create)
		admin.GET("/users/:id", c.user.Get)
		admin.PUT("/users/:id", c.user.Update)
		admin.PUT("/users/:id/status", c.user.SetStatus)
		admin.DELETE("/users/:id", c.user.Delete)

		admin.POST("/departments", c.department.Create)
		admin.PUT("/departments/:id", c.department.Update)
		admin.DELETE("/departments/:id", c.department.Delete)

		admin.POST("/subjects", c.subject.Create)
		admin.PUT("/subjects/:id", c.subject.Update)
		admin.DELETE("/subjects/:id", c.subject.Delete)
	}
}
