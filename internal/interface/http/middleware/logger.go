package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
//
// 教学要点：
// 1. 每个请求分配唯一请求ID（写回X-Request-ID响应头），便于排查问题
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体与Authorization头（敏感信息）
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = " | " + c.Errors.String()
		}

		log.Printf("[GIN] %3d | %13v | %15s | %-7s %s | %s%s",
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			errMsg,
		)

		// 慢请求告警（推荐服务超时上限3s，正常请求不应接近这个值）
		if latency > 3*time.Second {
			log.Printf("[WARN] 慢请求: %s %s 耗时 %v", c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}

// GetRequestID 从Context获取当前请求ID
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
