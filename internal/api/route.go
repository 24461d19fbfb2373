package api

import (
	"Instalens/internal/api/middleware"
	"Instalens/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "instalens",
			"status":  "ok",
		})
	})

	r.POST("/chat", group.ChatHandler.Chat)

	// 兼容挂载在 /agent 前缀下的部署形态
	agentGroup := r.Group("/agent")
	{
		agentGroup.POST("/chat", group.ChatHandler.Chat)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/recent", group.PostHandler.GetRecentPosts)
		}
	}

	return r
}
