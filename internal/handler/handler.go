package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/user/filmgraph/internal/config"
	"github.com/user/filmgraph/internal/graph"
	"github.com/user/filmgraph/internal/middleware"
	"github.com/user/filmgraph/internal/utils"
)

// Pinger 可探测存活的依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler HTTP 处理器
type Handler struct {
	Schema graphql.Schema
	Config *config.Config
	Store  Pinger
}

// NewHandler 创建处理器
func NewHandler(schema graphql.Schema, store Pinger, cfg *config.Config) *Handler {
	return &Handler{
		Schema: schema,
		Config: cfg,
		Store:  store,
	}
}

// GraphQL 处理 POST /graphql
func (h *Handler) GraphQL(c *gin.Context) {
	var req graph.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	h.execute(c, req)
}

// GraphQLGet 处理 GET /graphql，只允许 query 操作
func (h *Handler) GraphQLGet(c *gin.Context) {
	req := graph.Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}

	if req.Query == "" {
		if h.Config.GraphiQL {
			c.HTML(http.StatusOK, "graphiql", gin.H{"Endpoint": c.Request.URL.Path})
			return
		}
		utils.BadRequest(c, "missing query")
		return
	}

	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			utils.BadRequest(c, "variables must be a JSON object")
			return
		}
	}

	mutation, err := graph.IsMutation(req.Query, req.OperationName)
	if err != nil {
		// 语法错误交给执行器生成标准的错误结果
		h.execute(c, req)
		return
	}
	if mutation {
		c.Header("Allow", "POST")
		utils.MethodNotAllowed(c, "mutations must be sent with POST")
		return
	}
	h.execute(c, req)
}

func (h *Handler) execute(c *gin.Context, req graph.Request) {
	if req.OperationName != "" {
		c.Set(middleware.OperationKey, req.OperationName)
	}
	result := graph.Execute(c.Request.Context(), h.Schema, req)
	c.JSON(http.StatusOK, result)
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		log.Printf("[Health] 数据库不可用: %v", err)
		utils.ServiceUnavailable(c, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
