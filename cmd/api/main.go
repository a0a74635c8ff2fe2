package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobboardhq/jobboard-api/internal/config"
	"github.com/jobboardhq/jobboard-api/internal/database"
	"github.com/jobboardhq/jobboard-api/internal/handlers"
	"github.com/jobboardhq/jobboard-api/internal/middleware"
	"github.com/jobboardhq/jobboard-api/internal/models"
	"github.com/jobboardhq/jobboard-api/internal/services"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 5. Setup Router & CORS
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authRequired := middleware.RequireAuth(cfg.JWTSecret)
	employerOnly := middleware.RequireRole(models.RoleEmployer)
	jobSeekerOnly := middleware.RequireRole(models.RoleJobSeeker)

	// 6. Define Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.Search)
			jobs.GET("/employer/me", authRequired, employerOnly, jobHandler.ListMine)
			jobs.GET("/:id", jobHandler.GetByID)
			jobs.POST("", authRequired, employerOnly, jobHandler.Create)
			jobs.PUT("/:id", authRequired, employerOnly, jobHandler.Update)
			jobs.DELETE("/:id", authRequired, employerOnly, jobHandler.Delete)
		}

		// Application Routes
		applications := api.Group("/applications", authRequired)
		{
			applications.POST("", jobSeekerOnly, applicationHandler.Apply)
			applications.GET("/me", applicationHandler.ListMine)
			applications.GET("/job/:jobId", employerOnly, applicationHandler.ListForJob)
			applications.PUT("/:id/status", employerOnly, applicationHandler.SetStatus)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
