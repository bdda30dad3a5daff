package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/filmgraph/internal/config"
	"github.com/user/filmgraph/internal/graph"
	"github.com/user/filmgraph/internal/handler"
	"github.com/user/filmgraph/internal/middleware"
	"github.com/user/filmgraph/internal/repository"
	"github.com/user/filmgraph/internal/router"
	"github.com/user/filmgraph/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	db, err := repository.InitDB(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("建表失败: %v", err)
	}

	store := repository.NewStore(db)
	defer store.Close()

	schema, err := graph.NewSchema(service.NewServices(store))
	if err != nil {
		log.Fatalf("GraphQL schema 构建失败: %v", err)
	}

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.HTMLRender = router.LoadTemplates()

	h := handler.NewHandler(schema, store, cfg)
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("服务器启动于 http://%s (GraphiQL: %v)", cfg.Addr(), cfg.GraphiQL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("正在关闭服务器...")

		// 5 秒超时上下文用于关闭过程
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("服务器异常退出: %v", err)
		return
	}
	log.Println("服务器已退出")
}
