package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"registration-service/internal/config"
	"registration-service/internal/database/postgres"
	"registration-service/internal/database/redis"
	"registration-service/internal/event"
	"registration-service/internal/handlers"
	"registration-service/internal/premium"
	"registration-service/internal/repository"
	"registration-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/var", "log", "registration_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Hour

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Fatalf("error connect to redis: %s", err)
	}
	defer redisClient.Close()

	var publisher *event.Publisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("error connect to rabbitmq, events disabled: %s", err)
	} else {
		defer rabbitConn.Close()
		publisher = event.NewPublisher(rabbitConn)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient.GetClient(), sessionTTL)
	draftRepo := repository.NewDraftRepository(redisClient.GetClient(), sessionTTL)
	productRepo := repository.NewProductRepository(db, redisClient.GetClient())
	customerRepo := repository.NewCustomerRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	jwtService := services.NewJWTService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, sessionRepo, jwtService, sessionTTL)
	productService := services.NewProductService(productRepo)
	customerService := services.NewCustomerService(customerRepo)
	leadService := services.NewLeadService(leadRepo, publisher)
	dashboardService := services.NewDashboardService(dashboardRepo)
	resolver := premium.NewResolver(premium.DefaultRateTable())
	registrationService := services.NewRegistrationService(draftRepo, customerRepo, productRepo, resolver, publisher)

	// HTTP surface
	middleware := handlers.NewMiddleware(authService)
	app := fiber.New()

	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Registration service is healthy")
	})

	handlers.NewAuthHandler(authService, middleware, sessionTTL).Register(app)
	handlers.NewProductHandler(productService).Register(app)
	handlers.NewLeadHandler(leadService, middleware).Register(app)
	handlers.NewCustomerHandler(customerService, registrationService, middleware).Register(app)
	handlers.NewDashboardHandler(dashboardService, middleware).Register(app)
	handlers.NewRegistrationHandler(registrationService, middleware).Register(app)

	log.Printf("registration service listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
