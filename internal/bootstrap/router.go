package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ahmed-advisor/advisor-backend/config"
	advisorhttp "github.com/ahmed-advisor/advisor-backend/internal/advisor/http"
	httpapi "github.com/ahmed-advisor/advisor-backend/internal/api/http"
	"github.com/ahmed-advisor/advisor-backend/internal/middleware"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Store       *redis.Client
	Advisor     *advisorhttp.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-Key", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.APIKeyMiddleware(dep.Config.App.ServiceAPIKey))

	dep.Advisor.Register(api)

	return r
}
