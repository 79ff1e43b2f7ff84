package server

import (
	"strings"
	"time"

	"cms-backend/internal/config"
	"cms-backend/internal/handler"
	"cms-backend/internal/middleware"
	"cms-backend/internal/repository"
	"cms-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func New(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	contentRepo := repository.NewContentRepository(db)

	authService := service.NewAuthService(userRepo, tokenRepo)
	authHandler := handler.NewAuthHandler(authService)

	contentService := service.NewContentService(contentRepo)
	contentHandler := handler.NewContentHandler(contentService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(tokenRepo, userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/login", authHandler.Login)
	api.POST("/get_token", authHandler.GetToken)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/content", contentHandler.List)
		protected.POST("/content", contentHandler.Create)
		protected.PUT("/content", contentHandler.Update)
		protected.DELETE("/content", contentHandler.Delete)
		protected.GET("/content/search", contentHandler.Search)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
