package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prasetya/catatan/internal/pkg/config"
	"github.com/prasetya/catatan/internal/pkg/database"
	"github.com/prasetya/catatan/internal/pkg/health"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/pkg/mailer"
	"github.com/prasetya/catatan/internal/pkg/middleware"
	"github.com/prasetya/catatan/internal/pkg/server"
	authHandler "github.com/prasetya/catatan/services/auth/handler"
	authHTTP "github.com/prasetya/catatan/services/auth/handler/http"
	authRepo "github.com/prasetya/catatan/services/auth/repository"
	authUC "github.com/prasetya/catatan/services/auth/usecase"
	notesHandler "github.com/prasetya/catatan/services/notes/handler"
	notesHTTP "github.com/prasetya/catatan/services/notes/handler/http"
	notesRepo "github.com/prasetya/catatan/services/notes/repository"
	notesUC "github.com/prasetya/catatan/services/notes/usecase"
)

func main() {
	appName := "catatan"
	configPath := config.GetEnv("CONFIG_PATH", "config/catatan.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize mailer
	otpMailer := mailer.NewSMTPMailer(configs.SMTP)

	// Initialize repositories
	userRepository := authRepo.NewUserRepo(configs, postgresClient.GetDB(), redisClient)
	notesRepository := notesRepo.NewNotesRepo(configs, postgresClient.GetDB())

	// Initialize usecases
	authUsecase := authUC.NewAuthUC(userRepository, otpMailer, configs)
	notesUsecase := notesUC.NewNotesUC(notesRepository, configs)

	// Initialize handlers
	authHTTPHandler := authHTTP.NewAuthHandler(authUsecase)
	notesHTTPHandler := notesHTTP.NewNotesHandler(notesUsecase)

	authRoutes := authHandler.NewHandler(authHTTPHandler)
	notesRoutes := notesHandler.NewHandler(notesHTTPHandler, configs.JWT)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresHealthChecker(postgresClient),
		health.NewRedisHealthChecker(redisClient),
	)

	// Register service routes
	authRoutes.RegisterRoutes(e)
	notesRoutes.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
