package service

import (
	"context"
	"fmt"

	"github.com/user/filmgraph/internal/model"
	"github.com/user/filmgraph/internal/repository"
)

// FilmActorService 电影与演员关联
type FilmActorService struct {
	store *repository.Store
	env
}

// NewFilmActorService 创建关联服务
func NewFilmActorService(store *repository.Store) *FilmActorService {
	return &FilmActorService{store: store, env: defaultEnv()}
}

// List 偏移分页获取关联记录
func (s *FilmActorService) List(ctx context.Context, skip, take int) ([]model.FilmActorView, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = maxPageLimit
	}

	var out []model.FilmActorView
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		links, err := sess.FilmActor.List(skip, take)
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return notFound("FilmActors table does not have any data or is empty.")
		}
		out = make([]model.FilmActorView, 0, len(links))
		for _, l := range links {
			out = append(out, model.NewFilmActorView(l))
		}
		return nil
	})
	return out, classify("FilmActorService", err, "")
}

// Link 建立电影与演员的关联，电影或演员不存在时返回 NotFound
func (s *FilmActorService) Link(ctx context.Context, in model.FilmActorInput) (model.FilmActorView, string, error) {
	if err := validateStruct(in); err != nil {
		return model.FilmActorView{}, "", err
	}

	var link *model.FilmActor
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		film, err := sess.Film.FindByID(in.FilmID)
		if err != nil {
			return err
		}
		if film == nil {
			return notFound("Film with ID '%s' not found.", in.FilmID)
		}
		actor, err := sess.Actor.FindByID(in.ActorID)
		if err != nil {
			return err
		}
		if actor == nil {
			return notFound("Actor with ID '%s' not found.", in.ActorID)
		}

		ts := s.now()
		if in.Timestamp != nil {
			ts = *in.Timestamp
		}
		link = &model.FilmActor{
			UUID:      s.newID(),
			FilmID:    film.UUID,
			ActorID:   actor.UUID,
			Timestamp: model.Instant(ts),
		}
		return sess.FilmActor.Create(link)
	})
	if err != nil {
		return model.FilmActorView{}, "", classify("FilmActorService", err, "Film actor connection already exists.")
	}
	return model.NewFilmActorView(link), "Films and Actors successfully connected.", nil
}

// Unlink 删除关联
func (s *FilmActorService) Unlink(ctx context.Context, id string) (string, error) {
	var link *model.FilmActor
	err := s.store.WithSession(ctx, func(sess *repository.Session) error {
		var err error
		link, err = sess.FilmActor.FindByID(id)
		if err != nil {
			return err
		}
		if link == nil {
			return notFound("Film Actor with ID '%s' not found.", id)
		}
		return sess.FilmActor.Delete(link)
	})
	if err != nil {
		return "", classify("FilmActorService", err, "")
	}
	return fmt.Sprintf("Film Actor with Film ID '%s' and Actor ID '%s' successfully deleted.", link.FilmID, link.ActorID), nil
}
