package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pollhive/backend/config"
	"github.com/pollhive/backend/database"
	_ "github.com/pollhive/backend/docs" // Swagger docs - auto-generated
	authctrl "github.com/pollhive/backend/internal/controller/auth"
	authorctrl "github.com/pollhive/backend/internal/controller/author"
	userctrl "github.com/pollhive/backend/internal/controller/user"
	"github.com/pollhive/backend/internal/logger"
	"github.com/pollhive/backend/internal/middleware"
	"github.com/pollhive/backend/internal/model"
	"github.com/pollhive/backend/internal/repository"
	"github.com/pollhive/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Survey API
// @version 1.0
// @description JSON API for authoring surveys of typed questions and collecting one submission per respondent.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSurveyRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			func(cfg *config.Config) service.TokenService {
				return service.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
			},
			service.NewAuthService,
			service.NewAnswerValidator,
			service.NewSubmissionService,
			service.NewAuthorSurveyService,
			service.NewUserSurveyService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			authorctrl.NewAuthorSurveyController,
			userctrl.NewUserSurveyController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through zerolog instead of gin's default logger.
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

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *authctrl.AuthController,
	authorCtrl *authorctrl.AuthorSurveyController,
	userCtrl *userctrl.UserSurveyController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		surveys := authed.Group("/surveys")
		surveys.GET("", userCtrl.GetAllSurveys)
		surveys.GET("/:survey_id", userCtrl.GetSurveyDetails)
		surveys.POST("/:survey_id/answers", userCtrl.SubmitAnswers)
		surveys.GET("/:survey_id/my-answers", userCtrl.GetMyAnswers)

		// Authoring routes; ownership is enforced in the service layer.
		surveys.POST("", authorCtrl.CreateSurvey)
		surveys.PUT("/:survey_id", authorCtrl.UpdateSurvey)
		surveys.DELETE("/:survey_id", authorCtrl.DeleteSurvey)
		surveys.GET("/:survey_id/results", authorCtrl.GetSurveyResults)

		authed.GET("/profile", userCtrl.GetProfile)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.Choice{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
