package model

import "time"

// FilmView 电影的读取视图
type FilmView struct {
	UUID       string     `json:"uuid"`
	Title      string     `json:"title"`
	Genre      string     `json:"genre"`
	Language   string     `json:"language"`
	Release    *time.Time `json:"release"`
	IsPremiere bool       `json:"is_premiere"`
	Timestamp  time.Time  `json:"timestamp"`
}

// FilmUpdateView 更新后返回的电影视图（不含 uuid）
type FilmUpdateView struct {
	Title      string     `json:"title"`
	Genre      string     `json:"genre"`
	Language   string     `json:"language"`
	Release    *time.Time `json:"release"`
	IsPremiere bool       `json:"is_premiere"`
	Timestamp  time.Time  `json:"timestamp"`
}

// FilmWithActorsView 电影及其全部演员
type FilmWithActorsView struct {
	UUID       string      `json:"uuid"`
	Title      string      `json:"title"`
	Genre      string      `json:"genre"`
	Language   string      `json:"language"`
	Release    *time.Time  `json:"release"`
	IsPremiere bool        `json:"is_premiere"`
	Timestamp  time.Time   `json:"timestamp"`
	Actors     []ActorView `json:"actors"`
}

// ActorView 演员的读取视图
type ActorView struct {
	UUID        string     `json:"uuid"`
	Name        string     `json:"name"`
	BirthDate   *time.Time `json:"birth_date"`
	Biography   *string    `json:"biography"`
	Nationality *string    `json:"nationality"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ActorUpdateView 更新后返回的演员视图（不含 uuid）
type ActorUpdateView struct {
	Name        string     `json:"name"`
	BirthDate   *time.Time `json:"birth_date"`
	Biography   *string    `json:"biography"`
	Nationality *string    `json:"nationality"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ActorWithFilmsView 演员及其参演的全部电影
type ActorWithFilmsView struct {
	UUID        string     `json:"uuid"`
	Name        string     `json:"name"`
	BirthDate   *time.Time `json:"birth_date"`
	Biography   *string    `json:"biography"`
	Nationality *string    `json:"nationality"`
	Timestamp   time.Time  `json:"timestamp"`
	Films       []FilmView `json:"films"`
}

// FilmActorView 关联的读取视图
type FilmActorView struct {
	UUID      string    `json:"uuid"`
	FilmID    string    `json:"film_id"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewFilmView(f *Film) FilmView {
	return FilmView{
		UUID:       f.UUID,
		Title:      f.Title,
		Genre:      f.Genre,
		Language:   f.Language,
		Release:    f.Release,
		IsPremiere: f.IsPremiere,
		Timestamp:  f.Timestamp,
	}
}

func NewFilmUpdateView(f *Film) FilmUpdateView {
	return FilmUpdateView{
		Title:      f.Title,
		Genre:      f.Genre,
		Language:   f.Language,
		Release:    f.Release,
		IsPremiere: f.IsPremiere,
		Timestamp:  f.Timestamp,
	}
}

// NewFilmWithActorsView 合并电影与演员列表
func NewFilmWithActorsView(f *Film, actors []*Actor) FilmWithActorsView {
	out := FilmWithActorsView{
		UUID:       f.UUID,
		Title:      f.Title,
		Genre:      f.Genre,
		Language:   f.Language,
		Release:    f.Release,
		IsPremiere: f.IsPremiere,
		Timestamp:  f.Timestamp,
		Actors:     make([]ActorView, 0, len(actors)),
	}
	for _, a := range actors {
		out.Actors = append(out.Actors, NewActorView(a))
	}
	return out
}

func NewActorView(a *Actor) ActorView {
	return ActorView{
		UUID:        a.UUID,
		Name:        a.Name,
		BirthDate:   a.BirthDate,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		Timestamp:   a.Timestamp,
	}
}

func NewActorUpdateView(a *Actor) ActorUpdateView {
	return ActorUpdateView{
		Name:        a.Name,
		BirthDate:   a.BirthDate,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		Timestamp:   a.Timestamp,
	}
}

// NewActorWithFilmsView 合并演员与电影列表
func NewActorWithFilmsView(a *Actor, films []*Film) ActorWithFilmsView {
	out := ActorWithFilmsView{
		UUID:        a.UUID,
		Name:        a.Name,
		BirthDate:   a.BirthDate,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		Timestamp:   a.Timestamp,
		Films:       make([]FilmView, 0, len(films)),
	}
	for _, f := range films {
		out.Films = append(out.Films, NewFilmView(f))
	}
	return out
}

func NewFilmActorView(fa *FilmActor) FilmActorView {
	return FilmActorView{
		UUID:      fa.UUID,
		FilmID:    fa.FilmID,
		ActorID:   fa.ActorID,
		Timestamp: fa.Timestamp,
	}
}
