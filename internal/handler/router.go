package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/middleware"
	"github.com/jadwalku/jadwal-api/internal/service"
	"github.com/jadwalku/jadwal-api/pkg/config"
	"github.com/jadwalku/jadwal-api/pkg/logger"
	corsmiddleware "github.com/jadwalku/jadwal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/jadwalku/jadwal-api/pkg/middleware/requestid"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Teachers  *TeacherHandler
	Classes   *ClassHandler
	Subjects  *SubjectHandler
	Tasks     *TaskHandler
	Schedules *ScheduleHandler
	TimeSlots *TimeSlotHandler
	Stats     *StatsHandler
	Settings  *SettingHandler
	Metrics   *service.MetricsService
}

// NewRouter assembles the gin engine with middleware and all routes.
func NewRouter(cfg *config.Config, logr *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(h.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	teachers := api.Group("/teachers")
	teachers.GET("", h.Teachers.List)
	teachers.POST("", h.Teachers.Create)
	teachers.GET("/:id", h.Teachers.Get)
	teachers.PUT("/:id", h.Teachers.Update)
	teachers.DELETE("/:id", h.Teachers.Delete)

	classes := api.Group("/classes")
	classes.GET("", h.Classes.List)
	classes.POST("", h.Classes.Create)
	classes.PUT("/:id", h.Classes.Update)
	classes.DELETE("/:id", h.Classes.Delete)

	subjects := api.Group("/subjects")
	subjects.GET("", h.Subjects.List)
	subjects.POST("", h.Subjects.Create)
	subjects.PUT("/:id", h.Subjects.Update)
	subjects.DELETE("/:id", h.Subjects.Delete)

	tasks := api.Group("/tasks")
	tasks.GET("", h.Tasks.List)
	tasks.POST("", h.Tasks.Create)
	tasks.PUT("/:id", h.Tasks.Update)
	tasks.DELETE("/:id", h.Tasks.Delete)

	schedules := api.Group("/schedules")
	schedules.GET("", h.Schedules.List)
	schedules.POST("", h.Schedules.Create)
	schedules.GET("/conflicts", h.Schedules.Conflicts)
	schedules.GET("/:id", h.Schedules.Get)
	schedules.PUT("/:id", h.Schedules.Update)
	schedules.DELETE("/:id", h.Schedules.Delete)

	timeslots := api.Group("/timeslots")
	timeslots.GET("", h.TimeSlots.List)
	timeslots.POST("", h.TimeSlots.Create)
	timeslots.GET("/current", h.TimeSlots.Current)
	timeslots.POST("/reorder", h.TimeSlots.Reorder)
	timeslots.PUT("/:id", h.TimeSlots.Update)
	timeslots.DELETE("/:id", h.TimeSlots.Delete)

	stats := api.Group("/stats")
	stats.GET("/teachers", h.Stats.Workloads)
	stats.GET("/teachers/export", h.Stats.Export)
	stats.GET("/teachers/:id", h.Stats.Workload)

	settings := api.Group("/settings")
	settings.GET("/policy", h.Settings.GetPolicy)
	settings.PUT("/policy", h.Settings.UpdatePolicy)

	return r
}
