package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmate/config"
	"jobmate/cron"
	"jobmate/database"
	bookingRepoPkg "jobmate/database/repository/booking"
	customerRepoPkg "jobmate/database/repository/customer"
	employeeRepoPkg "jobmate/database/repository/employee"
	reviewRepoPkg "jobmate/database/repository/review"
	skillRepoPkg "jobmate/database/repository/skill"
	userRepoPkg "jobmate/database/repository/user"
	"jobmate/handlers"
	"jobmate/middleware"
	"jobmate/routes"
	"jobmate/services/admin"
	"jobmate/services/booking"
	"jobmate/services/matching"
	"jobmate/services/notification"
	"jobmate/services/review"
	"jobmate/services/user"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Asynq client for the mail queue; the worker consumes it in background.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer asynqClient.Close()

	mailer := &notification.LogMailer{Logger: logger}
	cron.InitMailWorker(mailer)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	skillRepo := skillRepoPkg.NewMongoSkillRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	notificationService := &notification.AsynqNotificationService{
		Client: asynqClient,
		Logger: logger,
	}

	userService := &user.DefaultUserService{
		Repo:         userRepo,
		EmployeeRepo: employeeRepo,
		CustomerRepo: customerRepo,
	}

	matchingService := &matching.DefaultMatchingService{
		EmployeeRepo: employeeRepo,
		CacheClient:  utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		EmployeeRepo: employeeRepo,
		UserRepo:     userRepo,
		Notifier:     notificationService,
	}

	reviewService := &review.DefaultReviewService{
		Repo:         reviewRepo,
		BookingRepo:  bookingRepo,
		EmployeeRepo: employeeRepo,
		UserRepo:     userRepo,
		Notifier:     notificationService,
	}

	adminService := &admin.DefaultAdminService{
		UserRepo:     userRepo,
		EmployeeRepo: employeeRepo,
		BookingRepo:  bookingRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		UserRepo: userRepo,

		Auth:     handlers.NewAuthHandler(userService),
		Employee: handlers.NewEmployeeHandler(matchingService, reviewService, userService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Review:   handlers.NewReviewHandler(reviewService),
		Skill:    handlers.NewSkillHandler(skillRepo),
		Admin:    handlers.NewAdminHandler(adminService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
