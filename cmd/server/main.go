package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "arbejdstid/docs" // swagger docs

	"arbejdstid/internal/auth"
	"arbejdstid/internal/cache"
	"arbejdstid/internal/config"
	"arbejdstid/internal/db"
	"arbejdstid/internal/handler"
	"arbejdstid/internal/model"
	"arbejdstid/internal/repository"
	"arbejdstid/internal/router"
	"arbejdstid/internal/service"
	"arbejdstid/internal/view"
)

// @title Arbejdstider API
// @version 1.0
// @description JSON access to the work-hours tracker: aggregated hours per period and the change-request log. Authentication is the session cookie set by /login.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("template init: %v", err)
	}
	e.Renderer = renderer

	// Two stores, created idempotently at startup: credentials in one file,
	// work records and change requests in the other. No operation spans
	// both, so there is no shared transaction scope to manage.
	usersDB, err := db.NewSQLite(cfg.UsersDBPath)
	if err != nil {
		log.Fatalf("users database init: %v", err)
	}
	if err := usersDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("users auto-migrate: %v", err)
	}

	hoursDB, err := db.NewSQLite(cfg.HoursDBPath)
	if err != nil {
		log.Fatalf("hours database init: %v", err)
	}
	if err := hoursDB.AutoMigrate(&model.WorkRecord{}, &model.ChangeRequest{}); err != nil {
		log.Fatalf("hours auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(usersDB)
	recordRepo := repository.NewWorkRecordRepository(hoursDB)
	changeRepo := repository.NewChangeRequestRepository(hoursDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, sessionStore)
	hoursService := service.NewHoursService(recordRepo)
	scheduleService := service.NewScheduleService(changeRepo, cfg.StrictDeleteOwnership)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler(hoursService, scheduleService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	hoursHandler := handler.NewHoursHandler(hoursService)
	apiHandler := handler.NewAPIHandler(hoursService, scheduleService)

	// Register routes
	router.Register(
		e,
		tokenService,
		authService,
		authHandler,
		dashboardHandler,
		scheduleHandler,
		hoursHandler,
		apiHandler,
	)

	if cfg.StrictDeleteOwnership {
		log.Println("strict delete ownership enabled")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
