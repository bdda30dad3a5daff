package service

import (
	"context"
	"fmt"

	"github.com/user/filmgraph/internal/model"
	"github.com/user/filmgraph/internal/repository"
)

// FilmService 电影查询与变更
type FilmService struct {
	store *repository.Store
	env
}

// NewFilmService 创建电影服务
func NewFilmService(store *repository.Store) *FilmService {
	return &FilmService{store: store, env: defaultEnv()}
}

// List 游标分页获取电影列表，结果为空时返回 NotFound
func (s *FilmService) List(ctx context.Context, cursor string, forward bool, limit int) ([]model.FilmView, error) {
	var out []model.FilmView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		films, err := sess.Film.List(cursor, forward, normalizeLimit(limit))
		if err != nil {
			return err
		}
		if len(films) == 0 {
			return notFound("Data not found or empty.")
		}
		out = make([]model.FilmView, 0, len(films))
		for _, f := range films {
			out = append(out, model.NewFilmView(f))
		}
		return nil
	})
	return out, classify("FilmService", err, "")
}

// Get 根据标题（可选 uuid）获取单部电影
func (s *FilmService) Get(ctx context.Context, title, id string) (model.FilmView, error) {
	var out model.FilmView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		film, err := s.lookup(sess, title, id)
		if err != nil {
			return err
		}
		out = model.NewFilmView(film)
		return nil
	})
	return out, classify("FilmService", err, "")
}

// GetWithActors 获取电影及其全部演员：先查电影，再查关联演员，最后合并
func (s *FilmService) GetWithActors(ctx context.Context, title string) (model.FilmWithActorsView, error) {
	var out model.FilmWithActorsView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		film, err := s.lookup(sess, title, "")
		if err != nil {
			return err
		}
		actors, err := sess.Actor.ListByFilm(film.UUID)
		if err != nil {
			return err
		}
		out = model.NewFilmWithActorsView(film, actors)
		return nil
	})
	return out, classify("FilmService", err, "")
}

// Create 创建电影
func (s *FilmService) Create(ctx context.Context, in model.FilmInput) (model.FilmView, string, error) {
	if err := validateStruct(in); err != nil {
		return model.FilmView{}, "", err
	}

	film := model.NewFilm(s.newID(), in, s.now())
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		return sess.Film.Create(film)
	})
	if err != nil {
		return model.FilmView{}, "", classify("FilmService", err, fmt.Sprintf("Film '%s' already exists.", in.Title))
	}
	return model.NewFilmView(film), fmt.Sprintf("Film '%s' successfully created.", in.Title), nil
}

// Update 按标题更新电影，只应用 patch 中已提供的字段；未提供 timestamp 时刷新为当前时间
func (s *FilmService) Update(ctx context.Context, title string, patch model.FilmPatch) (model.FilmUpdateView, string, error) {
	if err := validateFilmPatch(patch); err != nil {
		return model.FilmUpdateView{}, "", err
	}
	if !patch.Timestamp.IsSet() {
		patch.Timestamp = model.Some(s.now())
	}

	var out model.FilmUpdateView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		film, err := s.lookup(sess, title, "")
		if err != nil {
			return err
		}
		if err := sess.Film.Update(film, patch.Columns()); err != nil {
			return err
		}
		out = model.NewFilmUpdateView(film)
		return nil
	})
	if err != nil {
		newTitle, _ := patch.Title.Get()
		return model.FilmUpdateView{}, "", classify("FilmService", err, fmt.Sprintf("Film '%s' already exists.", newTitle))
	}
	return out, fmt.Sprintf("Film '%s' successfully updated.", title), nil
}

// Delete 按标题删除电影
func (s *FilmService) Delete(ctx context.Context, title string) (string, error) {
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		film, err := s.lookup(sess, title, "")
		if err != nil {
			return err
		}
		return sess.Film.Delete(film)
	})
	if err != nil {
		return "", classify("FilmService", err, "")
	}
	return fmt.Sprintf("Film %s successfully deleted.", title), nil
}

func (s *FilmService) lookup(sess *repository.Session, title, id string) (*model.Film, error) {
	film, err := sess.Film.FindByTitle(title, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		if id != "" {
			return nil, notFound("Film '%s' or ID '%s' not found.", title, id)
		}
		return nil, notFound("Film '%s' not found.", title)
	}
	return film, nil
}

func validateFilmPatch(p model.FilmPatch) error {
	fields := []struct {
		name string
		opt  model.Optional[string]
	}{
		{"title", p.Title},
		{"genre", p.Genre},
		{"language", p.Language},
	}
	for _, f := range fields {
		if v, ok := f.opt.Get(); ok {
			if err := validateField(f.name, v, "notblank,max=255"); err != nil {
				return err
			}
		}
	}
	return nil
}
