package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// OperationKey 上下文中 GraphQL 操作名的键
const OperationKey = "graphql.operation"

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// 处理请求
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		op := c.GetString(OperationKey)
		if op == "" {
			op = "-"
		}

		log.Printf("[%s] %s %s op=%s %d %v",
			c.Request.Method,
			path,
			c.ClientIP(),
			op,
			status,
			latency,
		)
	}
}
