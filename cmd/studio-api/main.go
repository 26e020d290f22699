package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/michel-adelino/schedule/api/swagger"
	"github.com/michel-adelino/schedule/internal/handler"
	"github.com/michel-adelino/schedule/internal/middleware"
	"github.com/michel-adelino/schedule/internal/repository"
	"github.com/michel-adelino/schedule/internal/seed"
	"github.com/michel-adelino/schedule/internal/service"
	"github.com/michel-adelino/schedule/pkg/config"
	"github.com/michel-adelino/schedule/pkg/logger"
	corsmiddleware "github.com/michel-adelino/schedule/pkg/middleware/cors"
	reqidmiddleware "github.com/michel-adelino/schedule/pkg/middleware/requestid"
)

// @title Dance Studio Scheduler API
// @version 0.1.0
// @description Weekly scheduling board with dancer conflict detection
// @BasePath /
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	store := repository.NewStore()
	dancerRepo := repository.NewDancerRepository(store)
	routineRepo := repository.NewRoutineRepository(store)
	referenceRepo := repository.NewReferenceRepository(store)
	scheduleRepo := repository.NewScheduleRepository(store)
	roomRepo := repository.NewRoomRepository(store)

	if err := roomRepo.InitRooms(ctx, cfg.Rooms.Count, cfg.Rooms.VisibleCount); err != nil {
		logr.Sugar().Fatalw("failed to init rooms", "error", err)
	}
	if cfg.Seed.Enabled {
		err := seed.Load(ctx, seed.Repositories{
			Dancers:    dancerRepo,
			Routines:   routineRepo,
			References: referenceRepo,
			Schedules:  scheduleRepo,
		}, logr)
		if err != nil {
			logr.Sugar().Fatalw("failed to load seed data", "error", err)
		}
	}

	metricsSvc := service.NewMetricsService()
	scheduleSvc := service.NewScheduleService(scheduleRepo, routineRepo, roomRepo, nil, metricsSvc, logr)
	routineSvc := service.NewRoutineService(routineRepo, dancerRepo, referenceRepo, nil, logr)
	dancerSvc := service.NewDancerService(dancerRepo, scheduleRepo, roomRepo, nil, logr)
	roomSvc := service.NewRoomService(roomRepo, cfg.Grid, nil, logr)
	exportSvc := service.NewExportService(scheduleRepo, roomRepo, dancerRepo, logr)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	routineHandler := handler.NewRoutineHandler(routineSvc)
	dancerHandler := handler.NewDancerHandler(dancerSvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/routines", routineHandler.List)
		api.POST("/routines", routineHandler.Create)
		api.GET("/routines/:id", routineHandler.Get)
		api.PUT("/routines/:id", routineHandler.Update)
		api.DELETE("/routines/:id", routineHandler.Delete)
		api.GET("/teachers", routineHandler.Teachers)
		api.GET("/genres", routineHandler.Genres)

		api.GET("/dancers", dancerHandler.List)
		api.POST("/dancers", dancerHandler.Create)
		api.GET("/dancers/:id", dancerHandler.Get)
		api.GET("/dancers/:id/schedule", dancerHandler.Schedule)

		api.GET("/sessions", scheduleHandler.List)
		api.POST("/sessions", scheduleHandler.Place)
		api.POST("/sessions/check", scheduleHandler.Check)
		api.PUT("/sessions/:id", scheduleHandler.Move)
		api.DELETE("/sessions/:id", scheduleHandler.Remove)
		api.GET("/conflicts", scheduleHandler.Conflicts)

		api.GET("/rooms", roomHandler.List)
		api.GET("/rooms/:id", roomHandler.Get)
		api.PUT("/rooms/visible", roomHandler.SetVisible)
		api.GET("/grid", roomHandler.Grid)

		if cfg.Export.Enabled {
			api.GET("/export/schedule", exportHandler.Schedule)
			api.GET("/export/dancers/:id", exportHandler.DancerSchedule)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
