package router

import (
	"time"

	"shifttrack/internal/config"
	"shifttrack/internal/handler"
	"shifttrack/internal/infra"
	"shifttrack/internal/middleware"
	"shifttrack/internal/repository"
	"shifttrack/internal/service"
	"shifttrack/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	groqClient := infra.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	scheduleRepo := repository.NewPayScheduleRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	kpiRepo := repository.NewKpiRepository(db)
	wellnessRepo := repository.NewWellnessRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	insightSvc := service.NewInsightService(groqClient, rdb, cfg.InsightCacheTTLMinutes)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	authSvc := service.NewAuthService(userRepo, cfg)
	shiftSvc := service.NewShiftService(shiftRepo, dispatcher, insightSvc)
	paySvc := service.NewPayService(shiftRepo, userRepo)
	scheduleSvc := service.NewPayScheduleService(scheduleRepo)
	dashboardSvc := service.NewDashboardService(shiftRepo, insightSvc)
	analyticsSvc := service.NewAnalyticsService(shiftRepo, insightSvc)
	kpiSvc := service.NewKpiService(kpiRepo, shiftRepo)
	wellnessSvc := service.NewWellnessService(wellnessRepo)
	achievementSvc := service.NewAchievementService(achievementRepo, shiftRepo, insightSvc)
	backupSvc := service.NewBackupService(shiftRepo)
	adminSvc := service.NewAdminService(adminRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	shiftsH := handler.NewShiftsHandler(shiftSvc)
	payH := handler.NewPayHandler(paySvc)
	schedulesH := handler.NewPaySchedulesHandler(scheduleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	kpiH := handler.NewKpiHandler(kpiSvc)
	wellnessH := handler.NewWellnessHandler(wellnessSvc)
	achievementsH := handler.NewAchievementsHandler(achievementSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, insightSvc))
	r.POST("/api/register", authH.Register)
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/profile", authH.GetProfile)
		api.PUT("/profile", authH.UpdateProfile)
		api.PUT("/profile/password", authH.ChangePassword)

		api.POST("/shifts", shiftsH.Create)
		api.GET("/shifts", shiftsH.List)
		api.GET("/shifts/:id", shiftsH.Get)
		api.PUT("/shifts/:id", shiftsH.Update)
		api.DELETE("/shifts/:id", shiftsH.Delete)

		pay := api.Group("/pay")
		{
			pay.GET("/daily", payH.Daily)
			pay.GET("/weekly", payH.Weekly)
			pay.GET("/monthly", payH.Monthly)
			pay.GET("/yearly", payH.Yearly)
			pay.GET("/report", payH.Report)
		}

		schedules := api.Group("/pay-schedules")
		{
			schedules.POST("", schedulesH.Create)
			schedules.GET("", schedulesH.List)
			schedules.GET("/:id", schedulesH.Get)
			schedules.PUT("/:id", schedulesH.Update)
			schedules.DELETE("/:id", schedulesH.Delete)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/data", dashboardH.Data)
			dashboard.GET("/summary", dashboardH.Summary)
			dashboard.POST("/notes/process", dashboardH.ProcessNotes)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/weekly", analyticsH.Weekly)
			analytics.GET("/monthly", analyticsH.Monthly)
			analytics.GET("/yearly", analyticsH.Yearly)
		}

		kpi := api.Group("/kpi")
		{
			kpi.POST("", kpiH.Create)
			kpi.GET("", kpiH.List)
			kpi.GET("/summary", kpiH.Summary)
			kpi.GET("/shift/:shiftId", kpiH.GetByShift)
			kpi.GET("/:id", kpiH.Get)
			kpi.PUT("/:id", kpiH.Update)
			kpi.DELETE("/:id", kpiH.Delete)
		}

		wellness := api.Group("/wellness")
		{
			wellness.POST("/metrics", wellnessH.CreateMetric)
			wellness.GET("/metrics", wellnessH.ListMetrics)
			wellness.GET("/metrics/:id", wellnessH.GetMetric)
			wellness.PUT("/metrics/:id", wellnessH.UpdateMetric)
			wellness.DELETE("/metrics/:id", wellnessH.DeleteMetric)
			wellness.POST("/goals", wellnessH.CreateGoal)
			wellness.GET("/goals", wellnessH.ListGoals)
			wellness.GET("/goals/:id", wellnessH.GetGoal)
			wellness.PUT("/goals/:id", wellnessH.UpdateGoal)
			wellness.DELETE("/goals/:id", wellnessH.DeleteGoal)
			wellness.GET("/summary", wellnessH.Summary)
		}

		api.GET("/achievements", achievementsH.List)
		api.POST("/achievements/check", achievementsH.Check)

		backup := api.Group("/backup")
		{
			backup.GET("/export", backupH.Export)
			backup.POST("/import", backupH.Import)
		}

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/tables", adminH.ListTables)
			admin.GET("/tables/:tableName", adminH.GetTable)
			admin.PUT("/tables/:tableName/:id", adminH.UpdateRecord)
			admin.DELETE("/tables/:tableName/:id", adminH.DeleteRecord)
			admin.POST("/execute", adminH.Execute)
			admin.POST("/migrate", adminH.Migrate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
