package api

import (
	"github.com/gin-gonic/gin"
	"yousou/config"
	"yousou/service"
	"yousou/util"
)

// SetupRouter 设置路由
func SetupRouter(searchService *service.SearchService) *gin.Engine {
	// 设置查询服务
	SetSearchService(searchService)

	// 创建认证服务
	authService := service.NewAuthService()
	SetAuthService(authService)
	authHandler := NewAuthHandler(authService)

	// 设置为生产模式
	gin.SetMode(gin.ReleaseMode)

	// 创建默认路由
	r := gin.Default()

	// 添加中间件
	r.Use(CORSMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(util.GzipMiddleware()) // 添加压缩中间件

	// 定义API路由组
	api := r.Group("/api")
	{
		// 认证相关路由
		api.POST("/auth/login", authHandler.Login)

		// 查询接口 - 支持POST和GET两种方式
		api.POST("/search", AuthMiddleware(), SearchHandler)
		api.GET("/search", AuthMiddleware(), SearchHandler)

		// 健康检查接口
		api.GET("/health", func(c *gin.Context) {
			handlerNames := []string{}
			triggers := []string{}
			if searchService != nil && searchService.GetManager() != nil {
				for _, h := range searchService.GetManager().GetHandlers() {
					handlerNames = append(handlerNames, h.Name())
					triggers = append(triggers, h.Trigger())
				}
			}

			c.JSON(200, gin.H{
				"status":        "ok",
				"auth_enabled":  config.AppConfig != nil && config.AppConfig.AuthEnabled,
				"handler_count": len(handlerNames),
				"handlers":      handlerNames,
				"triggers":      triggers,
			})
		})
	}

	return r
}
