package handlers

import (
	"net/http"

	"github.com/SscSPs/todo_backend/cmd/docs"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/middleware"
	"github.com/SscSPs/todo_backend/internal/platform/config"
	"github.com/SscSPs/todo_backend/internal/platform/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Routes under gated require an access token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	cookies := cookie.NewManager(cfg.Cookie)

	v1 := r.Group("/api/v1")
	gated := v1.Group("", middleware.AuthMiddleware(services.Session, cookie.AccessTokenCookie))

	registerUserRoutes(v1, gated, newUserHandler(services.User, services.Session, cookies))
	registerTodoRoutes(gated, newTodoHandler(services.Todo))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
