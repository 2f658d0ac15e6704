package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, logger, &cfg.Auth)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, userRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, logger)
	dashboardService := services.NewDashboardService(requestRepo, equipmentRepo, userRepo, logger)
	calendarService := services.NewCalendarService(requestRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	calendarCtrl := controllers.NewCalendarController(calendarService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- 4. РОУТЕРЫ ---
	runAuthRouter(api, authCtrl, authMW)

	secureGroup := api.Group("", authMW.Auth)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runRequestRouter(secureGroup, requestCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runCalendarRouter(secureGroup, calendarCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
