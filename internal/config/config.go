package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config 应用配置
type Config struct {
	Env         string
	DatabaseURL string
	Host        string
	Port        string
	GraphiQL    bool
	DBLogLevel  string
}

// Load 加载配置
func Load() *Config {
	env := getEnv("APP_ENV", "development")

	dbURL := getEnv("DATABASE_URL", getEnv("POSTGRES_DATABASE_URI", ""))
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "filmgraph")
		dbSSL := getEnv("DB_SSLMODE", "disable")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	}

	// 生产环境默认关闭 GraphiQL
	graphiql, err := strconv.ParseBool(getEnv("GRAPHIQL", strconv.FormatBool(env != "production")))
	if err != nil {
		fmt.Println("GRAPHIQL 配置无效，已关闭 GraphiQL")
		graphiql = false
	}

	return &Config{
		Env:         env,
		DatabaseURL: dbURL,
		Host:        getEnv("APP_HOST", getEnv("APP_DEV_HOST", "0.0.0.0")),
		Port:        getEnv("PORT", getEnv("APP_DEV_PORT", "8000")),
		GraphiQL:    graphiql,
		DBLogLevel:  strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
	}
}

// Addr HTTP 监听地址
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
