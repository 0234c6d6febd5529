package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"farm-advisor/internal/artifact"
	"farm-advisor/internal/config"
	"farm-advisor/internal/handlers"
	"farm-advisor/internal/repository"
	"farm-advisor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func setupLogging(logDir string) (*os.File, error) {
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func newSessionRepository(cfg *config.Config) repository.SessionRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemorySessionRepository(cfg.SessionTTL)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
	}
	return repository.NewRedisSessionRepository(rdb, cfg.SessionTTL)
}

func main() {
	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		log.Printf("logging to stderr: %v", err)
	} else {
		defer logFile.Close()
	}

	userRepo := repository.NewFileUserRepository(cfg.UsersFile)
	// A malformed store document is fatal: the service must not start with
	// an unreadable account store.
	if _, err := userRepo.Load(); err != nil {
		log.Fatalf("failed to initialize user store: %v", err)
	}

	cropArtifact := artifact.Load(cfg.ModelsDir)
	rainfallModel := artifact.LoadRainfall(cfg.ModelsDir)

	sessionRepo := newSessionRepository(cfg)
	jwtService := services.NewJWTService(cfg.SessionSecret)
	authService := services.NewAuthService(userRepo, sessionRepo, jwtService)
	inferenceService := services.NewInferenceService(cropArtifact)
	accountService := services.NewAccountService(userRepo)
	rainfallService := services.NewRainfallService(rainfallModel)

	middleware := handlers.NewMiddleware(authService)
	cookieMaxAge := int(cfg.SessionTTL.Seconds())

	r := gin.Default()
	handlers.NewAuthHandler(authService, middleware, cookieMaxAge).RegisterRoutes(r)
	handlers.NewDashboardHandler(inferenceService, rainfallService, middleware).RegisterRoutes(r)
	handlers.NewPredictHandler(inferenceService, middleware).RegisterRoutes(r)
	handlers.NewAdminHandler(accountService, middleware).RegisterRoutes(r)

	log.Printf("starting farm-advisor on port %s (models ready: %v)", cfg.Port, inferenceService.Ready())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
