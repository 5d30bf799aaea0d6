package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/db"
	httpadapter "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/mail"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/app/service"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/config"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepo := dbadapter.NewTaskRepository(db)
	paymentRepo := dbadapter.NewPaymentRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	ratingRepo := dbadapter.NewRatingRepository(db)
	meetingRepo := dbadapter.NewMeetingRepository(db)
	profileRepo := dbadapter.NewProfileRepository(db)

	// Without an email endpoint the reminder job runs in dry-run mode.
	var mailer ports.Mailer
	if cfg.EmailAPIURL != "" {
		mailer = mail.NewSender(cfg.EmailAPIURL, cfg.EmailAPIKey)
	} else {
		logger.Warn("EMAIL_API_URL not set, payment reminders will run dry")
	}

	taskService := service.NewTaskService(taskRepo, cfg.ArchivePolicy())
	paymentService := service.NewPaymentService(paymentRepo)
	projectService := service.NewProjectService(projectRepo)
	ratingService := service.NewRatingService(ratingRepo)
	meetingService := service.NewMeetingService(meetingRepo)
	profileService := service.NewProfileService(profileRepo)
	analyticsService := service.NewAnalyticsService(taskRepo, paymentRepo)
	reminderService := service.NewReminderService(paymentRepo, profileRepo, mailer, cfg.EmailSender, cfg.ReminderLeadDays)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	if len(cfg.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
		r.Use(cors.New(corsConfig))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Tasks:     handlers.NewTaskHandler(taskService),
		Payments:  handlers.NewPaymentHandler(paymentService),
		Projects:  handlers.NewProjectHandler(projectService),
		Ratings:   handlers.NewRatingHandler(ratingService),
		Meetings:  handlers.NewMeetingHandler(meetingService),
		Profiles:  handlers.NewProfileHandler(profileService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Reminders: handlers.NewReminderHandler(reminderService, cfg.ReminderLeadDays),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
