package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	httpAdapter "github.com/brianmuthui/portfolio-api/adapters/http"
	"github.com/brianmuthui/portfolio-api/adapters/media_storage"
	"github.com/brianmuthui/portfolio-api/adapters/persistence"
	authUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/auth"
	contactUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/contact"
	experienceUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/experience"
	mediaUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/media"
	profileUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/project"
	siteUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	skillUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/skill"
	"github.com/brianmuthui/portfolio-api/internal/config"
	"github.com/brianmuthui/portfolio-api/pkg/auth"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

func main() {

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Portfolio API Server...")

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}
	viewCache := persistence.NewRedisViewCache(redisClient, cfg.Redis.ViewTTL, appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	viewUseCase := siteUC.NewViewUseCase(profileRepo, experienceRepo, projectRepo, skillRepo, viewCache, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, viewCache)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, viewCache, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, viewCache, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, viewCache, appLogger)
	uploadAssetUseCase := mediaUC.NewUploadAssetUseCase(uploader, appLogger)
	deleteAssetUseCase := mediaUC.NewDeleteAssetUseCase(uploader, kafkaClient, appLogger)
	contactUseCase := contactUC.NewContactUseCase(contactRepo, kafkaClient, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadAssetUseCase, deleteAssetUseCase, appLogger)
	contactHandler := httpAdapter.NewContactHandler(contactUseCase, appLogger)
	siteHandler := httpAdapter.NewSiteHandler(viewUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{

				adminPrivate.GET("/profile", profileHandler.GetProfile)
				adminPrivate.PUT("/profile", profileHandler.UpdateProfile)

				exp := adminPrivate.Group("/experience")
				{
					exp.GET("", experienceHandler.ListExperience)
					exp.POST("", experienceHandler.CreateExperience)
					exp.POST("/sync", experienceHandler.SyncExperience)
					exp.PUT("/:id", experienceHandler.UpdateExperience)
					exp.DELETE("/:id", experienceHandler.DeleteExperience)
				}

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", projectHandler.ListProjects)
					projects.POST("", projectHandler.CreateProject)
					projects.POST("/sync", projectHandler.SyncProjects)
					projects.PUT("/:id", projectHandler.UpdateProject)
					projects.DELETE("/:id", projectHandler.DeleteProject)
				}

				skills := adminPrivate.Group("/skills")
				{
					skills.GET("", skillHandler.ListSkills)
					skills.POST("", skillHandler.CreateSkillCategory)
					skills.POST("/sync", skillHandler.SyncSkills)
					skills.PUT("/:id", skillHandler.UpdateSkillCategory)
					skills.DELETE("/:id", skillHandler.DeleteSkillCategory)
				}

				media := adminPrivate.Group("/media")
				{
					media.POST("/upload", mediaHandler.UploadAsset)
					media.POST("/delete", mediaHandler.DeleteAsset)
				}

				adminPrivate.GET("/messages", contactHandler.ListMessages)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/view", siteHandler.GetView)
			public.POST("/contact", contactHandler.SubmitMessage)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
