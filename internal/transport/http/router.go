package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/nirmalvora/padosee-server/internal/auth"
	"github.com/nirmalvora/padosee-server/internal/transport/http/handler"
	"github.com/nirmalvora/padosee-server/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

type tokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	requestHandler *handler.RequestHandler,
	tokens tokenParser,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)

	// Public: login, registration and password change.
	r.POST("/login", authHandler.Login)
	r.POST("/users", userHandler.Create)
	r.PATCH("/users/:id/password", authHandler.ChangePassword)

	users := r.Group("/users", authMW)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	requests := r.Group("/requests", authMW)
	requests.POST("", requestHandler.Create)
	requests.GET("", requestHandler.List)
	requests.GET("/:id", requestHandler.GetByID)
	requests.GET("/sender/:id", requestHandler.ListBySender)
	requests.GET("/receiver/:id", requestHandler.ListByReceiver)
	requests.PATCH("/:id", requestHandler.Update)
	requests.DELETE("/:id", requestHandler.Delete)

	return r
}
