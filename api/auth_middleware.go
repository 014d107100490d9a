package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"yousou/config"
	"yousou/model"
	"yousou/service"
)

var authService *service.AuthService

// SetAuthService 设置认证服务
func SetAuthService(s *service.AuthService) {
	authService = s
}

// AuthMiddleware 认证中间件
// 未启用认证时直接放行
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AppConfig == nil || !config.AppConfig.AuthEnabled {
			c.Next()
			return
		}

		// 获取Authorization头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "缺少认证令牌"))
			c.Abort()
			return
		}

		// 检查Bearer格式
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "无效的认证格式"))
			c.Abort()
			return
		}

		// 提取并验证令牌
		token := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "无效的认证令牌: "+err.Error()))
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
