package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens, logger))
	todoHandler := handlers.NewTodoHandler(services.NewTodoService(todoRepo))
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo))

	var limiter *middleware.RateLimiter
	if cfg.AuthRateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	}

	r := gin.New()
	// ErrorHandler must wrap Recovery so recovered panics reach it.
	r.Use(middleware.RequestLogger(logger), middleware.ErrorHandler(logger), middleware.Recovery())

	r.GET("/health", handlers.Health)

	// Auth routes (public)
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(limiter))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Todo routes (protected)
	protected := r.Group("")
	protected.Use(middleware.RequireAuth(tokens))
	{
		protected.GET("/search", todoHandler.Search)
		protected.POST("/search", todoHandler.Create)
		protected.GET("/todos/:id", todoHandler.GetByID)
		protected.PUT("/todos/:id", todoHandler.Update)
		protected.DELETE("/todos/:id", todoHandler.Delete)
	}

	// User routes (public)
	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
	}

	return r
}
