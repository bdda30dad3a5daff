package service

import (
	"context"
	"fmt"

	"github.com/user/filmgraph/internal/model"
	"github.com/user/filmgraph/internal/repository"
)

// ActorService 演员查询与变更
type ActorService struct {
	store *repository.Store
	env
}

// NewActorService 创建演员服务
func NewActorService(store *repository.Store) *ActorService {
	return &ActorService{store: store, env: defaultEnv()}
}

// List 游标分页获取演员列表
func (s *ActorService) List(ctx context.Context, cursor string, forward bool, limit int) ([]model.ActorView, error) {
	var out []model.ActorView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		actors, err := sess.Actor.List(cursor, forward, normalizeLimit(limit))
		if err != nil {
			return err
		}
		if len(actors) == 0 {
			return notFound("Data not found or empty.")
		}
		out = make([]model.ActorView, 0, len(actors))
		for _, a := range actors {
			out = append(out, model.NewActorView(a))
		}
		return nil
	})
	return out, classify("ActorService", err, "")
}

// Get 根据姓名（可选 uuid）获取演员
func (s *ActorService) Get(ctx context.Context, name, id string) (model.ActorView, error) {
	var out model.ActorView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		actor, err := s.lookup(sess, name, id)
		if err != nil {
			return err
		}
		out = model.NewActorView(actor)
		return nil
	})
	return out, classify("ActorService", err, "")
}

// GetWithFilms 获取演员及其参演的全部电影
func (s *ActorService) GetWithFilms(ctx context.Context, name string) (model.ActorWithFilmsView, error) {
	var out model.ActorWithFilmsView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		actor, err := s.lookup(sess, name, "")
		if err != nil {
			return err
		}
		films, err := sess.Film.ListByActor(actor.UUID)
		if err != nil {
			return err
		}
		out = model.NewActorWithFilmsView(actor, films)
		return nil
	})
	return out, classify("ActorService", err, "")
}

// Create 创建演员
func (s *ActorService) Create(ctx context.Context, in model.ActorInput) (model.ActorView, string, error) {
	if err := validateStruct(in); err != nil {
		return model.ActorView{}, "", err
	}

	actor := model.NewActor(s.newID(), in, s.now())
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		return sess.Actor.Create(actor)
	})
	if err != nil {
		return model.ActorView{}, "", classify("ActorService", err, fmt.Sprintf("Actor '%s' already exists.", in.Name))
	}
	return model.NewActorView(actor), fmt.Sprintf("Actor '%s' successfully created.", in.Name), nil
}

// Update 按姓名更新演员，只应用已提供的字段
func (s *ActorService) Update(ctx context.Context, name string, patch model.ActorPatch) (model.ActorUpdateView, string, error) {
	if v, ok := patch.Name.Get(); ok {
		if err := validateField("name", v, "notblank,max=255"); err != nil {
			return model.ActorUpdateView{}, "", err
		}
	}
	if v, ok := patch.Nationality.Get(); ok {
		if err := validateField("nationality", v, "max=255"); err != nil {
			return model.ActorUpdateView{}, "", err
		}
	}
	if !patch.Timestamp.IsSet() {
		patch.Timestamp = model.Some(s.now())
	}

	var out model.ActorUpdateView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		actor, err := s.lookup(sess, name, "")
		if err != nil {
			return err
		}
		if err := sess.Actor.Update(actor, patch.Columns()); err != nil {
			return err
		}
		out = model.NewActorUpdateView(actor)
		return nil
	})
	if err != nil {
		return model.ActorUpdateView{}, "", classify("ActorService", err, fmt.Sprintf("Actor '%s' already exists.", name))
	}
	return out, fmt.Sprintf("Actor '%s' successfully updated.", name), nil
}

// Delete 按姓名删除演员
func (s *ActorService) Delete(ctx context.Context, name string) (string, error) {
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		actor, err := s.lookup(sess, name, "")
		if err != nil {
			return err
		}
		return sess.Actor.Delete(actor)
	})
	if err != nil {
		return "", classify("ActorService", err, "")
	}
	return fmt.Sprintf("Actor %s successfully deleted.", name), nil
}

func (s *ActorService) lookup(sess *repository.Session, name, id string) (*model.Actor, error) {
	actor, err := sess.Actor.FindByName(name, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		if id != "" {
			return nil, notFound("Actor '%s' or ID '%s' not found.", name, id)
		}
		return nil, notFound("Actor '%s' not found.", name)
	}
	return actor, nil
}
