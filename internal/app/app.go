package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school_edu_backend/internal/config"
	"school_edu_backend/internal/controller"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/service"
	"school_edu_backend/pkg/database"
	"school_edu_backend/pkg/logger"
	"school_edu_backend/pkg/monitoring"
	"school_edu_backend/pkg/security"
	"school_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	department *repository.DepartmentRepository
	subject    *repository.SubjectRepository
	attendance *repository.AttendanceRepository
	mark       *repository.MarkRepository
	settings   *repository.SettingsRepository
	activity   *repository.ActivityRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	activity   *service.ActivityService
	user       *service.UserService
	department *service.DepartmentService
	subject    *service.SubjectService
	settings   *service.SettingsService
	attendance *service.AttendanceService
	marks      *service.MarksService
	analytics  *service.AnalyticsService
	report     *service.ReportService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	department *controller.DepartmentController
	subject    *controller.SubjectController
	attendance *controller.AttendanceController
	marks      *controller.MarksController
	settings   *controller.SettingsController
	analytics  *controller.AnalyticsController
	report     *controller.ReportController
	activity   *controller.ActivityController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，当前只有分析引擎参数支持在线调整
func (a *App) ApplyConfig(cfg *config.Config) {
	if a.services != nil && a.services.settings != nil {
		a.services.settings.ReloadDefaults(cfg)
	}
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		department: repository.NewDepartmentRepository(db),
		subject:    repository.NewSubjectRepository(db),
		attendance: repository.NewAttendanceRepository(db),
		mark:       repository.NewMarkRepository(db),
		settings:   repository.NewSettingsRepository(db),
		activity:   repository.NewActivityRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.activity = service.NewActivityService(repos.activity)
	s.user = service.NewUserService(repos.user, s.activity)
	s.department = service.NewDepartmentService(repos.department, s.activity)
	s.subject = service.NewSubjectService(repos.subject, s.activity)
	s.settings = service.NewSettingsService(repos.settings, rdb, cfg)
	s.attendance = service.NewAttendanceService(repos.attendance, s.subject, s.settings, s.activity)
	s.marks = service.NewMarksService(repos.mark, s.subject, s.settings, s.activity)
	s.analytics = service.NewAnalyticsService(repos.user, repos.subject, repos.attendance, repos.mark, s.settings, rdb, cfg.Analytics.CacheTTLSeconds)
	s.report = service.NewReportService(repos.user, s.subject, s.attendance, s.analytics)
	s.dashboard = service.NewDashboardService(repos.user, repos.department, repos.subject, repos.attendance, repos.activity, s.marks)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user, s.storage),
		department: controller.NewDepartmentController(s.department),
		subject:    controller.NewSubjectController(s.subject, s.user),
		attendance: controller.NewAttendanceController(s.attendance, s.user),
		marks:      controller.NewMarksController(s.marks, s.user),
		settings:   controller.NewSettingsController(s.settings),
		analytics:  controller.NewAnalyticsController(s.analytics, s.subject, s.department, s.user),
		report:     controller.NewReportController(s.report, s.subject),
		activity:   controller.NewActivityController(s.activity),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 不可用时降级为无缓存运行
		logger.Log.Warn("Redis unavailable, analytics caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("school-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
