package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ideashelf/backend/internal/config"
	"github.com/ideashelf/backend/internal/database"
	"github.com/ideashelf/backend/internal/handler"
	"github.com/ideashelf/backend/internal/middleware"
	"github.com/ideashelf/backend/internal/repository"
	"github.com/ideashelf/backend/internal/service"
	"github.com/ideashelf/backend/internal/session"
	"github.com/ideashelf/backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Session store (Redis)
	sessions, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer sessions.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	ideaRepo := repository.NewIdeaRepository(database.DB)
	likeRepo := repository.NewLikeRepository(database.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	ideaService := service.NewIdeaService(ideaRepo)
	likeService := service.NewLikeService(ideaRepo, likeRepo)

	// Initialize handlers
	cookieTTL := int(cfg.SessionTTL / time.Second)
	authHandler := handler.NewAuthHandler(authService, cookieTTL, cfg.IsProduction())
	ideaHandler := handler.NewIdeaHandler(ideaService)
	likeHandler := handler.NewLikeHandler(likeService)
	adminHandler := handler.NewAdminHandler(authService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.Authenticate(sessions, userRepo))
	{
		// Public routes (actor optional)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)
		api.GET("/ideas", ideaHandler.List)
		api.GET("/ideas/:id", ideaHandler.Get)

		// Protected routes (session required)
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.DELETE("/account", authHandler.DeleteAccount)
			protected.GET("/my/ideas", ideaHandler.ListMine)
			protected.POST("/ideas", ideaHandler.Create)
			protected.PUT("/ideas/:id", ideaHandler.Update)
			protected.DELETE("/ideas/:id", ideaHandler.Delete)
			protected.POST("/ideas/:id/like", likeHandler.Like)
			protected.DELETE("/ideas/:id/like", likeHandler.Unlike)
			protected.POST("/ideas/:id/like/toggle", likeHandler.Toggle)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.GetAllUsers)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
