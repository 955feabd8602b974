package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	redisClient "github.com/redis/go-redis/v9"

	"github.com/obruchev/user_intake_service/internal/adapter/handler/http"
	"github.com/obruchev/user_intake_service/internal/adapter/logger"
	"github.com/obruchev/user_intake_service/internal/adapter/prometheus"
	"github.com/obruchev/user_intake_service/internal/adapter/randomuser"
	redis "github.com/obruchev/user_intake_service/internal/adapter/redis"
	"github.com/obruchev/user_intake_service/internal/adapter/sqlite/repository"
	"github.com/obruchev/user_intake_service/internal/config"
	"github.com/obruchev/user_intake_service/internal/core/services"
)

// @title User Intake Service API
// @version 1.0
// @description Captures user profile records, pre-fills them from a random-profile provider, and lists stored records

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Open the record store (creates the file and schema on first run)
	store, err := repository.Open(cfg.DB.Path, cfg.DB.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to open record store: ", err)
	}
	defer store.Close()

	// Cache
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Intake workflow
	provider := randomuser.NewClient(cfg.Provider.URL, loggerAdapter)
	intakeService := services.NewIntakeService(store, provider, loggerAdapter, validate, cacheAdapter)
	recordHandler := http.NewRecordHandler(intakeService, loggerAdapter, metrics)

	// Init router
	router, err := http.NewRouter(
		cfg.HTTP,
		recordHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Application stopped", nil)
}
