package app

import (
	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/internal/middleware"
	"tutor_dashboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/classes", c.class.GetClasses)
		authGroup.PUT("/memos", c.class.SaveMemo)
		authGroup.GET("/students/:studentId/plan", c.plan.GetStudentPlan)
		authGroup.POST("/plans/:planId/complete", c.plan.MarkComplete)
	}
}
