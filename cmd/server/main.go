package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
	config "github.com/rupakcs/socialsync/configs"
	"github.com/rupakcs/socialsync/internal/api/handlers"
	"github.com/rupakcs/socialsync/internal/api/middleware"
	job "github.com/rupakcs/socialsync/internal/jobs"
	"github.com/rupakcs/socialsync/internal/platform"
	"github.com/rupakcs/socialsync/internal/queue"
	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/internal/scheduler"
	"github.com/rupakcs/socialsync/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	apiConfigRepo := repository.NewApiConfigRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	syncLogRepo := repository.NewSyncLogRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)
	userRepo := repository.NewUserRepository(db)

	factory := platform.NewFactory(platform.Deps{
		AppConfig:    *cfg,
		ApiConfigs:   apiConfigRepo,
		Integrations: integrationRepo,
	})

	syncService := service.NewSyncService(factory, analyticsRepo, syncLogRepo, apiConfigRepo)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)
	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)

	sched := scheduler.New(syncService, apiConfigRepo)
	if err := sched.InitializeAutoSync(context.Background()); err != nil {
		log.Printf("Failed to initialize auto sync: %v", err)
	}

	queueW := queue.NewQueue(syncService, apiConfigRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallback)
	app.Post("/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	sync := handlers.NewSyncHandler(syncService, sched, apiConfigRepo, syncLogRepo, queueW, client)
	api.Post("/sync/all", sync.SyncAll)
	api.Get("/sync/status", sync.Status)
	api.Post("/sync/:platform", sync.ManualSync)
	api.Post("/sync/:platform/schedule", sync.ScheduleSync)
	api.Post("/sync/:platform/stop", sync.StopSync)
	api.Get("/sync/:platform/logs", sync.ListLogs)

	analytics := handlers.NewAnalyticsHandler(analyticsRepo)
	api.Get("/analytics", analytics.ListAnalytics)
	api.Get("/analytics/:platform", analytics.GetAnalytics)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	user := handlers.NewUserHandler(userService)
	api.Get("/me", user.GetUserInfo)
	api.Delete("/me", user.RemoveUser)

	// cron jobs
	refreshTokenJob := job.NewTokenRefreshJob(integrationRepo, factory)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", refreshTokenJob.RefreshTokens)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeSyncPlatform, queueW.HandleSyncPlatformTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db, sched, c)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, sched *scheduler.Scheduler, c *cron.Cron) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	sched.StopAllAutoSync()
	c.Stop()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
