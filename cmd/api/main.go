package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/jobjournal/internal/auth"
	"github.com/justsurfingit/jobjournal/internal/config"
	"github.com/justsurfingit/jobjournal/internal/database"
	"github.com/justsurfingit/jobjournal/internal/handlers"
	"github.com/justsurfingit/jobjournal/internal/metrics"
	"github.com/justsurfingit/jobjournal/internal/otpstore"
	"github.com/justsurfingit/jobjournal/internal/services"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services
	llmService := services.NewLLMService(cfg.GeminiAPIKey)
	mailer := services.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	userService := services.NewUserService(db, []byte(cfg.JWTSecret), cfg.TokenValidity)
	jobService := services.NewJobService(db)
	reviewService := services.NewReviewService(db)
	otpService := services.NewOtpService(otpstore.NewMemory(), cfg.OTPValidity)

	// 4. Initialize Handlers
	userHandler := handlers.NewUserHandler(userService, otpService, mailer)
	jobHandler := handlers.NewJobHandler(jobService, mailer)
	reviewHandler := handlers.NewReviewHandler(reviewService, mailer)
	aiHandler := handlers.NewAIHandler(llmService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(metrics.GinMiddleware())

	authRequired := auth.Middleware([]byte(cfg.JWTSecret))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/metrics", metrics.Handler())

		// User Routes
		api.POST("/users/signup", userHandler.Signup)
		api.POST("/users/login", userHandler.Login)
		api.POST("/users/generate-otp", handlers.RateLimitByIP(rate.Every(30*time.Second), 3), userHandler.GenerateOtp)
		api.POST("/users/validate-otp", userHandler.ValidateOtp)
		api.PATCH("/users/reset-password", userHandler.ResetPassword)
		api.GET("/users/:id", userHandler.GetUserByID)
		api.GET("/users", authRequired, userHandler.GetUser)
		api.PUT("/users/bio", authRequired, userHandler.UpdateBio)
		api.DELETE("/users", authRequired, userHandler.DeleteAccount)

		// Job Routes
		api.GET("/jobs", authRequired, jobHandler.ListJobs)
		api.POST("/jobs", authRequired, jobHandler.CreateJob)
		api.PATCH("/jobs", authRequired, jobHandler.UpdateJob)
		api.DELETE("/jobs", authRequired, jobHandler.DeleteJob)

		// Review Routes
		api.GET("/reviews", reviewHandler.ListAll)
		api.GET("/reviews/user", authRequired, reviewHandler.ListMine)
		api.GET("/reviews/:id", authRequired, reviewHandler.ListByUser)
		api.POST("/reviews", authRequired, reviewHandler.Create)
		api.DELETE("/reviews/:id", authRequired, reviewHandler.Delete)

		// AI Routes
		api.POST("/ai/ask", authRequired, aiHandler.Ask)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
