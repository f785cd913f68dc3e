package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/database"
	_ "github.com/lshigami/Surveyor/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/Surveyor/internal/controller"
	adminctrl "github.com/lshigami/Surveyor/internal/controller/admin"
	userctrl "github.com/lshigami/Surveyor/internal/controller/user"
	"github.com/lshigami/Surveyor/internal/logger"
	"github.com/lshigami/Surveyor/internal/observability"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

// @title Surveyor API
// @version 1.0
// @description Survey authoring, submission and result aggregation.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.WithLogger(newFxLogger),

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewSurveyResponseRepository,
		),

		fx.Provide(
			service.NewSurveyService,
			service.NewQuestionService,
			service.NewAnswerService,
			service.NewResponseService,
			service.NewInsightService,
		),

		fx.Provide(
			adminctrl.NewSurveyController,
			adminctrl.NewAnswerController,
			userctrl.NewUserSurveyController,
		),

		// Migrations run before the server starts accepting requests.
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterTracing),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	app.Run()
	log.Info().Msg("Application stopped")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

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
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.Otel.ServiceName))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterTracing installs the tracer provider and flushes it on shutdown.
func RegisterTracing(lc fx.Lifecycle, cfg *config.Config) {
	var shutdown observability.Shutdown
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = observability.InitTracing(ctx, cfg)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}

// RegisterRoutesAndStartServer mounts the API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	surveyCtrl *adminctrl.SurveyController,
	answerCtrl *adminctrl.AnswerController,
	userCtrl *userctrl.UserSurveyController,
) {
	api := router.Group(controller.APIBase)
	surveyCtrl.RegisterRoutes(api)
	answerCtrl.RegisterRoutes(api)
	userCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Surveyor API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// newFxLogger routes fx's own lifecycle events through zerolog.
func newFxLogger() fxevent.Logger {
	return &fxevent.ConsoleLogger{W: logger.Component("fx")}
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
