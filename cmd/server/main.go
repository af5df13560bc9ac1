package main

import (
	"log"
	"strconv"
	"time"

	"github.com/celiarozalenm/fn-quest-live/internal/config"
	"github.com/celiarozalenm/fn-quest-live/internal/database"
	"github.com/celiarozalenm/fn-quest-live/internal/email"
	"github.com/celiarozalenm/fn-quest-live/internal/handlers"
	"github.com/celiarozalenm/fn-quest-live/internal/live"
	"github.com/celiarozalenm/fn-quest-live/internal/middleware"
	"github.com/celiarozalenm/fn-quest-live/internal/services"
	"github.com/celiarozalenm/fn-quest-live/internal/ws"

	_ "github.com/celiarozalenm/fn-quest-live/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quest Live API
// @version         1.0
// @description     Backend for the Quest Live booth competition: session booking, check-in, live races and results
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	sessionService := services.NewSessionService(db)
	registrationService := services.NewRegistrationService(db)
	competitionService := services.NewCompetitionService(db)
	progressService := services.NewProgressService(db)

	emailClient := email.NewClient(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)

	pollMS, _ := strconv.Atoi(cfg.PollIntervalMS)
	if pollMS <= 0 {
		pollMS = 1000
	}
	watcher := live.NewWatcher(
		competitionService, registrationService, progressService, hub,
		time.Duration(pollMS)*time.Millisecond,
	)
	watcher.Resume()
	defer watcher.Stop()

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	competitionHandler := handlers.NewCompetitionHandler(competitionService, registrationService, progressService, watcher, hub)
	progressHandler := handlers.NewProgressHandler(progressService, competitionService, registrationService, hub)
	emailHandler := handlers.NewEmailHandler(emailClient)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/competition/:id", wsHandler.HandleWebSocket)

	r.POST("/api/send-email", emailHandler.SendEmail)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/available", sessionHandler.ListAvailableSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/register", registrationHandler.RegisterForSession)
			sessions.GET("/:id/competition", competitionHandler.GetCompetitionBySession)

			sessions.GET("/:id/registrations", middleware.JWTAuth(authService), registrationHandler.ListSessionRegistrations)
			sessions.POST("/:id/walkin", middleware.JWTAuth(authService), registrationHandler.AddWalkin)
			sessions.POST("/:id/start", middleware.JWTAuth(authService), competitionHandler.StartCompetition)
		}

		registrations := api.Group("/registrations")
		{
			registrations.GET("", registrationHandler.ListUserRegistrations)
			registrations.GET("/:id", registrationHandler.GetRegistration)
			registrations.POST("/:id/checkin", registrationHandler.CheckIn)
		}

		competitions := api.Group("/competitions")
		{
			competitions.GET("/active", competitionHandler.GetActiveCompetition)
			competitions.GET("/:id", competitionHandler.GetCompetition)
			competitions.GET("/:id/progress", progressHandler.GetCompetitionProgress)
			competitions.GET("/:id/standings", progressHandler.GetStandings)
			competitions.POST("/:id/progress", progressHandler.UpdateProgress)

			competitions.PUT("/:id/status", middleware.JWTAuth(authService), competitionHandler.UpdateStatus)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
