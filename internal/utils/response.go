package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorItem GraphQL 错误条目
type ErrorItem struct {
	Message string `json:"message"`
}

// ErrorResponse 与 GraphQL 结果同形的错误响应
type ErrorResponse struct {
	Data   interface{} `json:"data"`
	Errors []ErrorItem `json:"errors"`
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Errors: []ErrorItem{{Message: message}}})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// MethodNotAllowed 返回405错误
func MethodNotAllowed(c *gin.Context, message string) {
	if message == "" {
		message = "method not allowed"
	}
	Error(c, 405, message)
}

// ServiceUnavailable 返回503错误
func ServiceUnavailable(c *gin.Context, message string) {
	if message == "" {
		message = "service unavailable"
	}
	Error(c, 503, message)
}
