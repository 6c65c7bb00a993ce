package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/token"
	"github.com/userhive/usersvc/internal/transport/http/handler"
	"github.com/userhive/usersvc/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, userHandler *handler.UserHandler, authHandler *handler.AuthHandler, tokens *token.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	users := r.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.Auth(tokens), authHandler.Me)

	return r
}
