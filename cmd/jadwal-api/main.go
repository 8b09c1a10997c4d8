package main

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	_ "github.com/jadwalku/jadwal-api/api/swagger"
	"github.com/jadwalku/jadwal-api/internal/handler"
	"github.com/jadwalku/jadwal-api/internal/repository"
	"github.com/jadwalku/jadwal-api/internal/service"
	"github.com/jadwalku/jadwal-api/pkg/cache"
	"github.com/jadwalku/jadwal-api/pkg/config"
	"github.com/jadwalku/jadwal-api/pkg/database"
	"github.com/jadwalku/jadwal-api/pkg/logger"
)

// @title JadwalKu API
// @version 1.0.0
// @description Timetable, teacher load and time slot service for school scheduling.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	redisClient, err = cache.NewRedis(cfg.Redis)
	if err != nil {
		// Stats fall back to recomputing on every request.
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	metricsSvc := service.NewMetricsService()
	teacherSvc := service.NewTeacherService(teacherRepo, nil, logr)
	classSvc := service.NewClassService(classRepo, nil, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, nil, logr)
	taskSvc := service.NewTaskService(taskRepo, nil, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, nil, logr)
	timeSlotSvc := service.NewTimeSlotService(timeSlotRepo, nil, logr)
	settingSvc := service.NewSettingService(settingRepo, logr)
	statsSvc := service.NewStatsService(teacherRepo, scheduleRepo, taskRepo, settingSvc, redisClient, cfg.Stats.CacheTTL, metricsSvc, logr)
	exportSvc := service.NewExportService(statsSvc, cfg.Export.MaxRows, logr)

	r := handler.NewRouter(cfg, logr, handler.Handlers{
		Teachers:  handler.NewTeacherHandler(teacherSvc),
		Classes:   handler.NewClassHandler(classSvc),
		Subjects:  handler.NewSubjectHandler(subjectSvc),
		Tasks:     handler.NewTaskHandler(taskSvc),
		Schedules: handler.NewScheduleHandler(scheduleSvc),
		TimeSlots: handler.NewTimeSlotHandler(timeSlotSvc),
		Stats:     handler.NewStatsHandler(statsSvc, exportSvc, metricsSvc),
		Settings:  handler.NewSettingHandler(settingSvc, statsSvc),
		Metrics:   metricsSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
