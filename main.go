// File: placehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placehub/config"
	"placehub/cron"
	"placehub/database"
	feedbackRepoPkg "placehub/database/repository/feedback"
	interviewRepoPkg "placehub/database/repository/interview"
	jobcardRepoPkg "placehub/database/repository/jobcard"
	jobroleRepoPkg "placehub/database/repository/jobrole"
	mentorRepoPkg "placehub/database/repository/mentor"
	slotRepoPkg "placehub/database/repository/slot"
	userRepoPkg "placehub/database/repository/user"
	workshopRepoPkg "placehub/database/repository/workshop"
	"placehub/handlers"
	"placehub/middleware"
	"placehub/routes"
	"placehub/services/feedback"
	"placehub/services/jobcard"
	"placehub/services/jobrole"
	"placehub/services/mentor"
	"placehub/services/notification"
	"placehub/services/schedule"
	"placehub/services/user"
	"placehub/services/workshop"
	"placehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	clock, err := schedule.NewClock(config.AppConfig.TimeZone)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Mail queue client and background worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer asynqClient.Close()

	mailWorker := cron.NewMailWorker(notification.NewSMTPMailer())
	if err := mailWorker.Start(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer mailWorker.Shutdown()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	interviewRepo := interviewRepoPkg.NewMongoInterviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo()
	workshopRepo := workshopRepoPkg.NewMongoWorkshopRepo()
	jobroleRepo := jobroleRepoPkg.NewMongoJobRoleRepo()
	jobcardRepo := jobcardRepoPkg.NewMongoJobCardRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	notifier := notification.NewAsynqNotifier(asynqClient)

	handlers.ScheduleSvc = &schedule.DefaultScheduleService{
		Slots:      slotRepo,
		Interviews: interviewRepo,
		Notifier:   notifier,
		Clock:      clock,
		Cache:      utils.GetCacheClient(),
		Logger:     logger,
	}
	handlers.UserSvc = user.NewDefaultUserService(userRepo, logger)
	handlers.MentorSvc = mentor.NewDefaultMentorService(mentorRepo, logger)
	handlers.WorkshopSvc = workshop.NewDefaultWorkshopService(
		workshopRepo, workshop.NewStripeProvider(), notifier, logger)
	handlers.JobRoleSvc = jobrole.NewDefaultJobRoleService(jobroleRepo, logger)
	handlers.JobCardSvc = jobcard.NewDefaultJobCardService(jobcardRepo, userRepo, logger)
	handlers.FeedbackSvc = feedback.NewDefaultFeedbackService(feedbackRepo, logger)

	routes.RegisterRoutes(router)

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
