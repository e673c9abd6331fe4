package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/database"
	_ "github.com/lshigami/examsched/docs" // Swagger docs
	"github.com/lshigami/examsched/internal/controller"
	adminctrl "github.com/lshigami/examsched/internal/controller/admin"
	userctrl "github.com/lshigami/examsched/internal/controller/user"
	"github.com/lshigami/examsched/internal/logger"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Exam Scheduling API
// @version 1.0
// @description Books lab exams, records results and schedules P1 -> Rec.1 -> Rec.2 recovery exams on the student's class weekdays.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // nil *gorm.DB with DATABASE_DRIVER=memory
			NewGinEngine,
		),

		fx.Provide(
			repository.NewExamRepositoryFor,
		),

		fx.Provide(
			service.NewBookingService,
			service.NewResultService,
		),

		fx.Provide(
			adminctrl.NewAdminResultController,
			adminctrl.NewAdminExamController,
			userctrl.NewUserExamController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(controller.RegisterValidators),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.NopLogger,
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the
// fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminResultCtrl *adminctrl.AdminResultController,
	adminExamCtrl *adminctrl.AdminExamController,
	userExamCtrl *userctrl.UserExamController,
) {
	api := router.Group("/api/v1")
	api.GET("/health", controller.Health)
	userExamCtrl.RegisterRoutes(api)

	admin := api.Group("/admin")
	adminResultCtrl.RegisterRoutes(admin)
	adminExamCtrl.RegisterRoutes(admin)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam scheduling API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
