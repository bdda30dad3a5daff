package graph

import (
	"time"

	"github.com/user/filmgraph/internal/model"
)

func stringArg(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func boolArg(args map[string]interface{}, key string) (bool, bool) {
	v, ok := args[key].(bool)
	return v, ok
}

func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return def
}

func timeArg(args map[string]interface{}, key string) (time.Time, bool) {
	switch v := args[key].(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

func objectArg(args map[string]interface{}, key string) map[string]interface{} {
	if v, ok := args[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}

func timePtr(args map[string]interface{}, key string) *time.Time {
	if v, ok := timeArg(args, key); ok {
		return &v
	}
	return nil
}

func stringPtr(args map[string]interface{}, key string) *string {
	if v, ok := stringArg(args, key); ok {
		return &v
	}
	return nil
}

func toFilmInput(in map[string]interface{}) model.FilmInput {
	title, _ := stringArg(in, "title")
	genre, _ := stringArg(in, "genre")
	language, _ := stringArg(in, "language")
	premiere, _ := boolArg(in, "is_premiere")
	return model.FilmInput{
		Title:      title,
		Genre:      genre,
		Language:   language,
		Release:    timePtr(in, "release"),
		IsPremiere: premiere,
		Timestamp:  timePtr(in, "timestamp"),
	}
}

// toFilmPatch 只收集请求中实际出现的字段
func toFilmPatch(data map[string]interface{}) model.FilmPatch {
	var p model.FilmPatch
	if v, ok := stringArg(data, "title"); ok {
		p.Title = model.Some(v)
	}
	if v, ok := stringArg(data, "genre"); ok {
		p.Genre = model.Some(v)
	}
	if v, ok := stringArg(data, "language"); ok {
		p.Language = model.Some(v)
	}
	if v, ok := timeArg(data, "release"); ok {
		p.Release = model.Some(v)
	}
	if v, ok := boolArg(data, "is_premiere"); ok {
		p.IsPremiere = model.Some(v)
	}
	if v, ok := timeArg(data, "timestamp"); ok {
		p.Timestamp = model.Some(v)
	}
	return p
}

func toActorInput(in map[string]interface{}) model.ActorInput {
	name, _ := stringArg(in, "name")
	return model.ActorInput{
		Name:        name,
		BirthDate:   timePtr(in, "birth_date"),
		Biography:   stringPtr(in, "biography"),
		Nationality: stringPtr(in, "nationality"),
		Timestamp:   timePtr(in, "timestamp"),
	}
}

func toActorPatch(data map[string]interface{}) model.ActorPatch {
	var p model.ActorPatch
	if v, ok := stringArg(data, "name"); ok {
		p.Name = model.Some(v)
	}
	if v, ok := timeArg(data, "birth_date"); ok {
		p.BirthDate = model.Some(v)
	}
	if v, ok := stringArg(data, "biography"); ok {
		p.Biography = model.Some(v)
	}
	if v, ok := stringArg(data, "nationality"); ok {
		p.Nationality = model.Some(v)
	}
	if v, ok := timeArg(data, "timestamp"); ok {
		p.Timestamp = model.Some(v)
	}
	return p
}

func toFilmActorInput(in map[string]interface{}) model.FilmActorInput {
	filmID, _ := stringArg(in, "film_id")
	actorID, _ := stringArg(in, "actor_id")
	return model.FilmActorInput{
		FilmID:    filmID,
		ActorID:   actorID,
		Timestamp: timePtr(in, "timestamp"),
	}
}
