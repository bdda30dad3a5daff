package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/user/filmgraph/internal/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Services 服务集合
type Services struct {
	Film      *FilmService
	Actor     *ActorService
	FilmActor *FilmActorService
}

// NewServices 创建服务集合
func NewServices(store *repository.Store) *Services {
	return &Services{
		Film:      NewFilmService(store),
		Actor:     NewActorService(store),
		FilmActor: NewFilmActorService(store),
	}
}

// NewID 生成 32 位十六进制标识
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// clock 与 ID 生成器，测试中可替换
type env struct {
	now   func() time.Time
	newID func() string
}

func defaultEnv() env {
	return env{
		now:   func() time.Time { return time.Now().UTC() },
		newID: NewID,
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
