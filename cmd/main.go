package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/config"
	"github.com/jaehopark/vocaweek/database"
	_ "github.com/jaehopark/vocaweek/docs" // Swagger docs - auto-generated
	adminctrl "github.com/jaehopark/vocaweek/internal/controller/admin"
	userctrl "github.com/jaehopark/vocaweek/internal/controller/user"
	"github.com/jaehopark/vocaweek/internal/logger"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/jaehopark/vocaweek/internal/scheduler"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Vocaweek API
// @version 1.0
// @description Daily vocabulary book with a weekly autograded quiz. Crawlers ingest words through the vocabulary endpoints; the weekly test lifecycle (week creation, word selection, attempts, grading, history) lives here.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewVocabularyRepository,
			repository.NewTestWeekRepository,
			repository.NewTestWordRepository,
			repository.NewTestResultRepository,
			repository.NewTestAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewWeekCreatorService,
			service.NewWordSelectorService,
			service.NewTestService,
			service.NewTestWeekService,
			service.NewVocabularyService,
			service.NewUserService,
		),

		// Scheduler
		fx.Provide(scheduler.New),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminWeekController,
			userctrl.NewTestController,
			userctrl.NewVocabularyController,
			userctrl.NewUserController,
			userctrl.NewWeekController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(RunScheduler),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin's request log through zerolog so everything shares one sink.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminWeekCtrl *adminctrl.AdminWeekController,
	testCtrl *userctrl.TestController,
	vocabCtrl *userctrl.VocabularyController,
	userCtrl *userctrl.UserController,
	weekCtrl *userctrl.WeekController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/test-weeks", adminWeekCtrl.CreateWeek)
		adminAPIGroup.POST("/test-words", adminWeekCtrl.GenerateWords)
	}

	apiGroup := router.Group("/api/v1")
	{
		tests := apiGroup.Group("/tests")
		tests.POST("/start", testCtrl.StartTest)
		tests.POST("/:result_id/submit", testCtrl.SubmitTest)
		tests.GET("/current-availability", testCtrl.GetAvailability)
		tests.GET("/history", testCtrl.GetHistory)
		tests.GET("/:result_id/detail", testCtrl.GetDetail)
		tests.DELETE("/:result_id", testCtrl.DeleteTest)

		weeks := apiGroup.Group("/test-weeks")
		weeks.GET("", weekCtrl.GetRecentWeeks)
		weeks.GET("/:id/words", weekCtrl.GetWeekWords)

		vocab := apiGroup.Group("/vocabulary")
		vocab.POST("", vocabCtrl.UpsertWord)
		vocab.GET("", vocabCtrl.GetWords)
		vocab.GET("/dates", vocabCtrl.GetRecentDates)
		vocab.GET("/:id", vocabCtrl.GetWord)
		vocab.PUT("/:id", vocabCtrl.UpdateWord)
		vocab.DELETE("/:id", vocabCtrl.DeleteWord)

		users := apiGroup.Group("/users")
		users.POST("", userCtrl.CreateUser)
		users.GET("", userCtrl.GetAllUsers)
		users.GET("/:id", userCtrl.GetUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Vocaweek API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// RunScheduler ties the weekly maintenance jobs to the fx lifecycle.
func RunScheduler(lc fx.Lifecycle, cfg *config.Config, sched *scheduler.Scheduler) {
	if !cfg.Quiz.SchedulerEnabled {
		log.Info().Msg("Scheduler disabled by configuration")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.VocabularyWord{},
		&model.TestWeek{},
		&model.TestWord{},
		&model.TestResult{},
		&model.TestAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
