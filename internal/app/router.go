package app

import (
	"clue_quest_backend/docs"
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/middleware"
	"clue_quest_backend/pkg/monitoring"
	"clue_quest_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	if cfg.Security.CSRFEnabled {
		api.Use(security.CSRF())
	}

	// 公共路由(无需登录)
	api.GET("/health", c.health.HealthCheck)
	api.GET("/csrf/", c.auth.CSRFToken)
	api.POST("/auth/login/", c.auth.Login)
	api.POST("/complete/", c.game.CompleteGame)

	// 会话专用路由
	session := api.Group("")
	session.Use(middleware.RequireSession(s.resolver))
	{
		session.POST("/auth/logout/", c.auth.Logout)
		session.GET("/game/status/", c.game.Status)
	}

	// 会话或后备标识符
	game := api.Group("/game")
	game.Use(middleware.ResolveTeam(s.resolver))
	{
		game.GET("/level/", c.game.GetCurrentLevel)
		game.POST("/submit/", c.game.SubmitAnswer)
	}

	// 管理员相关接口
	admin := api.Group("/admin")
	admin.Use(middleware.RequireSession(s.resolver), middleware.RequireStaff())
	{
		admin.GET("/levels", c.level.ListLevels)
		admin.POST("/levels", c.level.UpsertLevel)
		admin.POST("/levels/:levelNumber/asset", c.level.UploadAsset)
		admin.GET("/teams", c.level.ListTeams)
	}
}
